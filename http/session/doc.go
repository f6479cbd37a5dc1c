/*
Package session persists per-visitor state across requests,
backed by encrypted cookies by default or Redis when configured.

A [Service] hands out the [Session] for a request;
a Session stores arbitrary values and one-time [Flash] messages,
saving back to its store on every mutation.
*/
package session
