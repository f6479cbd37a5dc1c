/*
Package resource turns request paths into servable static resources.

Resolution and loading are split so each origin stays simple:

  - [Resolver] maps a relative path onto a file under a root directory,
    canonicalizing the path and refusing anything that escapes the root.
  - [Finder] decides which origin - the OS filesystem or a bundled
    [io/fs.FS] - serves a logical path, yielding a typed locator.
  - [Load] opens a locator and produces a [Descriptor]: a readable handle
    plus whatever length and modification metadata the origin can vouch for.

The caller receiving a Descriptor owns its Content handle and closes it
once the body is written.
*/
package resource
