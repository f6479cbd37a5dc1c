package cookie

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/cairn-web/cairn"
)

// A Decoder transforms the raw value extracted from a Cookie header
// into its usable form. A Decoder returning an error drops the pair.
type Decoder func(string) (string, error)

// An Encoder renders a single name/value pair into its "name=value" form,
// escaping whatever the wire format cannot carry.
type Encoder func(name, value string) string

// cookiePair matches one well-formed cookie pair:
// an RFC 2616 token, "=", then a quoted or unquoted run of RFC 6265 cookie-octets.
var cookiePair = regexp.MustCompile(
	`^([!#$%&'*+\-.^_` + "`" + `|~0-9A-Za-z]+)=("[^\x00-\x20\x7f",;\\]*"|[^\x00-\x20\x7f",;\\]*)$`,
)

// A Codec parses Cookie headers and serializes Set-Cookie header values.
//
// The zero configuration URL-unescapes inbound values and URL-escapes
// outbound ones; both directions are independently overridable.
type Codec struct {
	decode Decoder
	encode Encoder
}

// A CodecOptFn configures a Codec when constructing a new one.
type CodecOptFn func(*Codec)

// WithDecoder sets the Decoder applied to each inbound cookie value.
func WithDecoder(fn Decoder) func(*Codec) {
	return func(c *Codec) {
		c.decode = fn
	}
}

// WithEncoder sets the Encoder rendering each outbound name/value pair.
func WithEncoder(fn Encoder) func(*Codec) {
	return func(c *Codec) {
		c.encode = fn
	}
}

// NewCodec constructs a *Codec using the CodecOptFns passed in.
func NewCodec(opts ...CodecOptFn) *Codec {
	c := new(Codec)
	for _, opt := range opts {
		opt(c)
	}

	if c.decode == nil {
		c.decode = url.QueryUnescape
	}

	if c.encode == nil {
		c.encode = func(name, value string) string {
			return name + "=" + url.QueryEscape(value)
		}
	}

	return c
}

// Decode parses one Cookie header value into a name to value mapping.
//
// Parsing is permissive: segments that do not match the cookie pair
// grammar are skipped, not surfaced - third parties send all manner of
// nonstandard extensions and one bad segment must not poison the rest.
// Surrounding double quotes are stripped before decoding.
// When a name repeats, the later pair wins.
func (c *Codec) Decode(header string) map[string]string {
	pairs := make(map[string]string)
	segs := strings.FieldsFunc(header, func(r rune) bool { return r == ';' || r == ',' })
	for _, seg := range segs {
		m := cookiePair.FindStringSubmatch(strings.TrimSpace(seg))
		if m == nil {
			continue
		}

		val := m[2]
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}

		decoded, err := c.decode(val)
		if err != nil {
			continue
		}

		pairs[m[1]] = decoded
	}

	return pairs
}

// DecodeRequest decodes the Cookie header of r.
//
// The header is looked up case-insensitively through [http.Header].
func (c *Codec) DecodeRequest(r *http.Request) map[string]string {
	return c.Decode(r.Header.Get("Cookie"))
}

// Encode serializes the cookies into Set-Cookie header values, one per
// cookie name, sorted by name. Each value must be emitted as its own
// header occurrence: "," is valid inside a cookie value, so joining
// them into a single header is ambiguous.
//
// A value is either a plain string or a [Cookie]; anything else fails
// with [cairn.ErrNotValid]. A Cookie's attributes are validated before
// any rendering, failing fast on the first invalid one.
func (c *Codec) Encode(cookies map[string]any) ([]string, error) {
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]string, 0, len(cookies))
	for _, name := range names {
		switch v := cookies[name].(type) {
		case string:
			headers = append(headers, c.encode(name, v))

		case Cookie:
			h, err := c.encodeCookie(name, v)
			if err != nil {
				return nil, err
			}
			headers = append(headers, h)

		case *Cookie:
			h, err := c.encodeCookie(name, *v)
			if err != nil {
				return nil, err
			}
			headers = append(headers, h)

		default:
			return nil, fmt.Errorf("%w: cookie %q must be a string or cookie.Cookie, have %T", cairn.ErrNotValid, name, v)
		}
	}

	return headers, nil
}

// encodeCookie renders name, ck.Value and every attribute of ck into
// one Set-Cookie header value. Attributes render in name-sorted order
// so the same input always renders the same header.
func (c *Codec) encodeCookie(name string, ck Cookie) (string, error) {
	var b strings.Builder
	b.WriteString(c.encode(name, ck.Value))

	keys := make([]string, 0, len(ck.Attrs))
	for k := range ck.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := ck.Attrs[k]
		if !ValidAttr(k, v) {
			return "", fmt.Errorf("%w: cookie %q attribute %q=%v", cairn.ErrNotValid, name, k, v)
		}

		b.WriteString(renderAttr(k, v))
	}

	return b.String(), nil
}
