package cookie

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Attribute keys a structured [Cookie] accepts.
const (
	Domain   = "domain"
	Expires  = "expires"
	HttpOnly = "http-only"
	MaxAge   = "max-age"
	Path     = "path"
	Secure   = "secure"
)

// attrNames maps attribute keys to the names they render under in a Set-Cookie header.
var attrNames = map[string]string{
	Domain:   "Domain",
	Expires:  "Expires",
	HttpOnly: "HttpOnly",
	MaxAge:   "Max-Age",
	Path:     "Path",
	Secure:   "Secure",
}

// Attrs maps attribute keys to their values.
//
// Valid values per key:
//   - Domain, Path: any value free of ";"
//   - MaxAge: an int, int64 or [time.Duration]
//   - Expires: a [time.Time] or an already formatted string
//   - Secure, HttpOnly: a bool
type Attrs map[string]any

// A Cookie pairs a value with the Set-Cookie attributes qualifying it.
//
// A bare string suffices for a cookie without attributes;
// a Cookie is only required when attributes apply.
type Cookie struct {
	Value string
	Attrs Attrs
}

// ValidAttr reports whether key and val form a well-formed cookie attribute.
//
// key must be one of the attribute keys this package enumerates,
// val's rendering must not contain a ";" (it would break header framing),
// and MaxAge and Expires values must have the shapes [Attrs] documents.
// Other keys accept any ";"-free value.
func ValidAttr(key string, val any) bool {
	if _, ok := attrNames[key]; !ok {
		return false
	}

	if strings.Contains(fmt.Sprint(val), ";") {
		return false
	}

	switch key {
	case MaxAge:
		switch val.(type) {
		case int, int64, time.Duration:
			return true
		default:
			return false
		}

	case Expires:
		switch val.(type) {
		case time.Time, string:
			return true
		default:
			return false
		}

	default:
		return true
	}
}

// renderAttr renders a validated attribute as its Set-Cookie segment,
// including the leading ";".
//
// A false bool renders as nothing at all:
// the attribute is omitted, not emitted as ";Name=false".
func renderAttr(key string, val any) string {
	name := attrNames[key]

	switch v := val.(type) {
	case time.Duration:
		return fmt.Sprintf(";%s=%d", name, int64(v.Seconds()))

	case time.Time:
		return fmt.Sprintf(";%s=%s", name, v.UTC().Format(http.TimeFormat))

	case bool:
		if v {
			return ";" + name
		}
		return ""

	default:
		return fmt.Sprintf(";%s=%v", name, v)
	}
}
