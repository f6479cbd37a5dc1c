package resp

import (
	"errors"
	"io"
	"net/http"

	"github.com/cairn-web/cairn"
	"github.com/cairn-web/cairn/http/cookie"
	"github.com/cairn-web/cairn/http/resource"
	"github.com/cairn-web/cairn/http/session"
	"github.com/cairn-web/cairn/logger"
)

// Responder maintains reusable pieces for responding to HTTP requests.
//
// Most oftentimes, setting up a single instance of a Responder suffices
// for an application: one application-wide configuration of the cookie
// codec, session store and logger. When handling a specific request,
// calling code supplies the particulars through Fn functions.
type Responder struct {
	logger   logger.Logger
	codec    *cookie.Codec
	sessions session.SessionStorer
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := new(Responder)
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if d.codec == nil {
		d.codec = cookie.NewCodec()
	}

	return d
}

// Build composes a generic *Response by applying all fns.
//
// The status code defaults to http.StatusOK when no Fn sets one.
// The first failing Fn aborts the build, releasing any body already set.
func (d *Responder) Build(fns ...Fn) (*Response, error) {
	return d.do(nil, nil, fns...)
}

// Write composes a *Response and writes it out:
// every encoded cookie as its own Set-Cookie header occurrence,
// then the remaining headers, status code and body.
//
// Write closes the body once written - whoever built the Response
// handed ownership of its content here.
func (d *Responder) Write(w http.ResponseWriter, r *http.Request, fns ...Fn) error {
	rr, err := d.do(w, r, fns...)
	if err != nil {
		return err
	}

	if len(rr.cookies) > 0 {
		headers, err := d.codec.Encode(rr.cookies)
		if err != nil {
			rr.closeBody()
			return err
		}

		// NOTE: "," is a valid cookie value character,
		// so these must never be joined into a single header.
		for _, h := range headers {
			w.Header().Add("Set-Cookie", h)
		}
	}

	for key, vals := range rr.header {
		for _, v := range vals {
			w.Header().Add(key, v)
		}
	}

	if rr.url != nil {
		http.Redirect(w, r, rr.url.String(), rr.code)
		return nil
	}

	w.WriteHeader(rr.code)

	if rr.body == nil {
		return nil
	}

	_, err = io.Copy(w, rr.body)
	rr.closeBody()
	return err
}

// Static responds with the resource the request path names in f.
//
// The flow runs find, load, write: the finder picks the origin,
// the loader opens it, and Write streams it out with whatever
// metadata headers the resource carries.
//
// When no safe resource backs the path, the returned error wraps
// [cairn.ErrNotExist] and nothing is written - the caller decides
// the fallback, typically a 404.
func (d *Responder) Static(w http.ResponseWriter, r *http.Request, f *resource.Finder, fns ...Fn) error {
	loc, err := f.Find(r.URL.Path)
	if err != nil {
		return err
	}

	desc, err := resource.Load(loc)
	if err != nil {
		if !errors.Is(err, cairn.ErrNotExist) {
			d.logger.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		}
		return err
	}

	return d.Write(w, r, append([]Fn{Resource(desc)}, fns...)...)
}

// do applies all fns to a fresh *Response.
func (d *Responder) do(w http.ResponseWriter, r *http.Request, fns ...Fn) (*Response, error) {
	rr := &Response{w: w, r: r, header: make(http.Header)}
	for _, fn := range fns {
		if err := fn(*d, rr); err != nil {
			rr.closeBody()
			return nil, err
		}
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	return rr, nil
}
