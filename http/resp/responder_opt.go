package resp

import (
	"github.com/cairn-web/cairn/http/cookie"
	"github.com/cairn-web/cairn/http/session"
	"github.com/cairn-web/cairn/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithCodec sets the provided *cookie.Codec to use for serializing
// Set-Cookie headers.
//
// If no codec is provided through this option, a default codec will be configured.
func WithCodec(c *cookie.Codec) func(*Responder) {
	return func(d *Responder) {
		d.codec = c
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithSessionStore sets the provided store so Flash can reach the
// session for the request being responded to.
func WithSessionStore(s session.SessionStorer) func(*Responder) {
	return func(d *Responder) {
		d.sessions = s
	}
}
