package resp

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/cairn-web/cairn"
	"github.com/cairn-web/cairn/http/resource"
	"github.com/cairn-web/cairn/http/session"
	"github.com/cairn-web/cairn/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the generic response value a Responder builds while
// applying all functional options, before anything touches the wire.
//
// Headers live in an [http.Header], which provides the case-insensitive
// lookup the rest of cairn relies on.
type Response struct {
	w       http.ResponseWriter
	r       *http.Request
	code    int
	header  http.Header
	body    io.Reader
	cookies map[string]any
	url     *url.URL
}

// StatusCode returns the status code set on the Response.
func (r *Response) StatusCode() int { return r.code }

// Header returns the headers set on the Response.
func (r *Response) Header() http.Header { return r.header }

// Body returns the body set on the Response.
func (r *Response) Body() io.Reader { return r.body }

// Cookies returns the cookies set on the Response.
func (r *Response) Cookies() map[string]any { return r.cookies }

// SetHeader sets a header, rendering a non-string value as a string first.
func (r *Response) SetHeader(key string, val any) {
	s, ok := val.(string)
	if !ok {
		s = fmt.Sprint(val)
	}

	r.header.Set(key, s)
}

// closeBody releases the Response's body handle, if it holds one.
//
// Called on every path that stops short of handing the body to the
// transport, so no opened resource leaks.
func (r *Response) closeBody() {
	if c, ok := r.body.(io.Closer); ok {
		c.Close()
	}
}

// Body sets the content to respond with.
func Body(body io.Reader) Fn {
	return func(_ Responder, r *Response) error {
		r.body = body
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// ContentType sets the Content-Type header.
func ContentType(ct string) Fn {
	return func(_ Responder, r *Response) error {
		r.SetHeader("Content-Type", ct)
		return nil
	}
}

// Cookie adds a cookie to emit as its own Set-Cookie header.
//
// val is either a plain string or a [cookie.Cookie];
// a later Cookie with the same name overwrites an earlier one.
func Cookie(name string, val any) Fn {
	return func(_ Responder, r *Response) error {
		if r.cookies == nil {
			r.cookies = make(map[string]any)
		}

		r.cookies[name] = val
		return nil
	}
}

// Created sets the response status code to http.StatusCreated.
func Created() Fn {
	return func(d Responder, r *Response) error {
		return Code(http.StatusCreated)(d, r)
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), &logger.LogContext{Error: e, Request: r.r})
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Flash sets a flash message in the session with the passed in class and msg.
//
// The Responder must be configured with WithSessionStore,
// and the Fn must run under Write so a request is available;
// otherwise ErrBadConfig or ErrMissingData returns.
func Flash(flash session.Flash) Fn {
	return func(d Responder, r *Response) error {
		if d.sessions == nil {
			return fmt.Errorf("%w: no session store", cairn.ErrBadConfig)
		}

		if r.w == nil || r.r == nil {
			return fmt.Errorf("%w: no request to flash", cairn.ErrMissingData)
		}

		s, err := d.sessions.GetSession(r.r)
		if err != nil {
			return err
		}

		return s.SetFlash(r.w, r.r, flash)
	}
}

// Header sets a header, rendering a non-string value as a string first.
func Header(key string, val any) Fn {
	return func(_ Responder, r *Response) error {
		r.SetHeader(key, val)
		return nil
	}
}

// NotFound sets the response status code to http.StatusNotFound.
func NotFound() Fn {
	return func(d Responder, r *Response) error {
		return Code(http.StatusNotFound)(d, r)
	}
}

// Redirect parses the raw URL string and sets up the *Response to redirect to it.
func Redirect(u string) Fn {
	return func(d Responder, r *Response) error {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: u is not a valid URL: %v", cairn.ErrNotValid, err)
		}

		r.url = parsed
		return Code(http.StatusFound)(d, r)
	}
}

// Resource responds with a loaded resource:
// status 200, the resource's content as the body,
// and only the metadata headers the origin could vouch for -
// no Content-Length when the length is unknown,
// no Last-Modified when the timestamp is.
//
// Content-Type is derived from the resource's name when possible.
func Resource(desc *resource.Descriptor) Fn {
	return func(d Responder, r *Response) error {
		if desc == nil {
			return fmt.Errorf("%w: nil descriptor", cairn.ErrMissingData)
		}

		if err := Code(http.StatusOK)(d, r); err != nil {
			return err
		}

		r.body = desc.Content

		if desc.ContentLength >= 0 {
			r.SetHeader("Content-Length", strconv.FormatInt(desc.ContentLength, 10))
		}

		if !desc.LastModified.IsZero() {
			r.SetHeader("Last-Modified", desc.LastModified.UTC().Format(http.TimeFormat))
		}

		if ct := mime.TypeByExtension(path.Ext(desc.Name)); ct != "" {
			r.SetHeader("Content-Type", ct)
		}

		return nil
	}
}
