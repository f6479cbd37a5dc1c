/*
Package resp composes generic responses and writes them to HTTP requests,
with an easy way to configure the responses application-wide.

A [Responder] holds the reusable configuration - cookie codec, session
store, logger - while [Fn] options shape an individual [Response]:
its status code, headers, body, cookies.

[Responder.Static] runs the whole static-resource flow for a request,
from locating the resource through streaming it with its metadata headers.
*/
package resp
