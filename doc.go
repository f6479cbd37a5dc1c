/*
Package cairn is the root of the cairn web library.

cairn handles the response-construction side of an HTTP app:
resolving static resources safely off the filesystem or out of a bundled [io/fs.FS],
parsing and serializing cookies,
and composing those into responses with a small functional-options API.

The root package holds the values shared across cairn:
sentinel errors, the [Environment] type, and environment variable helpers.
*/
package cairn
