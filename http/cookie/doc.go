/*
Package cookie parses Cookie headers and serializes Set-Cookie header values.

Decoding follows the RFC 6265 grammar permissively:
well-formed "token=value" pairs are extracted and anything else is skipped,
keeping a request readable even when a third party ships malformed cookies alongside.

Encoding accepts bare string values or a [Cookie] carrying attributes
(Domain, Path, Max-Age, Expires, Secure, HttpOnly).
Attributes are validated before rendering;
handing Encode a malformed attribute is a programming error and fails the whole call.

Cookie values pass through a configurable [Decoder]/[Encoder] pair
defaulting to URL escaping, so arbitrary strings round-trip through the
constrained header grammar.
*/
package cookie
