package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cairn-web/cairn"
	"github.com/cairn-web/cairn/http/cookie"
	"github.com/stretchr/testify/require"
)

func TestCodecDecode(t *testing.T) {
	tcs := []struct {
		name     string
		header   string
		expected map[string]string
	}{
		{"Zero-Value", "", map[string]string{}},
		{"Single", "foo=bar", map[string]string{"foo": "bar"}},
		{"Pair-And-Quoted", `foo=bar; baz="qux"`, map[string]string{"foo": "bar", "baz": "qux"}},
		{"Garbage-Skipped", "foo=bar; garbage;;; baz=qux", map[string]string{"foo": "bar", "baz": "qux"}},
		{"Comma-Separated", "foo=bar, baz=qux", map[string]string{"foo": "bar", "baz": "qux"}},
		{"Last-Wins", "foo=bar; foo=baz", map[string]string{"foo": "baz"}},
		{"Empty-Value", "foo=", map[string]string{"foo": ""}},
		{"Escaped-Value", "foo=hello%20world", map[string]string{"foo": "hello world"}},
		{"Bad-Escape-Dropped", "foo=%zz; baz=qux", map[string]string{"baz": "qux"}},
		{"Bad-Token-Skipped", "fo o=bar; baz=qux", map[string]string{"baz": "qux"}},
		{"Attributes-Are-Pairs", "sid=v;Max-Age=3600;Secure", map[string]string{"sid": "v", "Max-Age": "3600"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := cookie.NewCodec()
			require.Equal(t, tc.expected, c.Decode(tc.header))
		})
	}

	t.Run("Custom-Decoder", func(t *testing.T) {
		c := cookie.NewCodec(cookie.WithDecoder(func(val string) (string, error) {
			if val == "reject" {
				return "", errors.New("nope")
			}
			return val + "!", nil
		}))

		actual := c.Decode("a=reject; b=ok")
		require.Equal(t, map[string]string{"b": "ok!"}, actual)
	})
}

func TestCodecDecodeRequest(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("cOoKiE", "foo=bar")

	// Act
	actual := cookie.NewCodec().DecodeRequest(r)

	// Assert
	require.Equal(t, map[string]string{"foo": "bar"}, actual)
}

func TestCodecEncode(t *testing.T) {
	expires := time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)

	tcs := []struct {
		name     string
		cookies  map[string]any
		expected []string
		err      error
	}{
		{
			"Zero-Value",
			map[string]any{},
			[]string{},
			nil,
		},
		{
			"Plain-String",
			map[string]any{"sid": "hello world"},
			[]string{"sid=hello+world"},
			nil,
		},
		{
			"Sorted-By-Name",
			map[string]any{"b": "2", "a": "1"},
			[]string{"a=1", "b=2"},
			nil,
		},
		{
			"Structured",
			map[string]any{"sid": cookie.Cookie{
				Value: "v",
				Attrs: cookie.Attrs{cookie.MaxAge: 3600, cookie.Secure: true, cookie.HttpOnly: false},
			}},
			[]string{"sid=v;Max-Age=3600;Secure"},
			nil,
		},
		{
			"Structured-Pointer",
			map[string]any{"sid": &cookie.Cookie{Value: "v", Attrs: cookie.Attrs{cookie.Path: "/"}}},
			[]string{"sid=v;Path=/"},
			nil,
		},
		{
			"MaxAge-Duration",
			map[string]any{"sid": cookie.Cookie{Value: "v", Attrs: cookie.Attrs{cookie.MaxAge: 90 * time.Minute}}},
			[]string{"sid=v;Max-Age=5400"},
			nil,
		},
		{
			"Expires-Time",
			map[string]any{"sid": cookie.Cookie{Value: "v", Attrs: cookie.Attrs{cookie.Expires: expires}}},
			[]string{"sid=v;Expires=Wed, 21 Oct 2015 07:28:00 GMT"},
			nil,
		},
		{
			"Expires-Preformatted",
			map[string]any{"sid": cookie.Cookie{Value: "v", Attrs: cookie.Attrs{cookie.Expires: "Wed, 21 Oct 2015 07:28:00 GMT"}}},
			[]string{"sid=v;Expires=Wed, 21 Oct 2015 07:28:00 GMT"},
			nil,
		},
		{
			"False-Attrs-Omitted",
			map[string]any{"sid": cookie.Cookie{Value: "v", Attrs: cookie.Attrs{cookie.Secure: false, cookie.HttpOnly: false}}},
			[]string{"sid=v"},
			nil,
		},
		{
			"Unknown-Attr",
			map[string]any{"sid": cookie.Cookie{Value: "v", Attrs: cookie.Attrs{"same-site": "Lax"}}},
			nil,
			cairn.ErrNotValid,
		},
		{
			"Bad-MaxAge",
			map[string]any{"sid": cookie.Cookie{Value: "v", Attrs: cookie.Attrs{cookie.MaxAge: "soon"}}},
			nil,
			cairn.ErrNotValid,
		},
		{
			"Bad-Value-Type",
			map[string]any{"sid": 42},
			nil,
			cairn.ErrNotValid,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := cookie.NewCodec()
			actual, err := c.Encode(tc.cookies)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	t.Run("Structured", func(t *testing.T) {
		// Arrange
		c := cookie.NewCodec()
		headers, err := c.Encode(map[string]any{"sid": cookie.Cookie{
			Value: "v",
			Attrs: cookie.Attrs{cookie.Secure: true, cookie.HttpOnly: false, cookie.MaxAge: 3600},
		}})
		require.Nil(t, err)
		require.Len(t, headers, 1)

		// Act
		decoded := c.Decode(headers[0])

		// Assert: attributes are not recoverable from decode, only the bare value is.
		require.Equal(t, "v", decoded["sid"])
	})

	t.Run("Plain-Idempotent", func(t *testing.T) {
		// Arrange
		c := cookie.NewCodec()
		original := "a value; with = tricky, chars\"\\"
		headers, err := c.Encode(map[string]any{"sid": original})
		require.Nil(t, err)
		require.Len(t, headers, 1)

		// Act
		decoded := c.Decode(headers[0])

		// Assert
		require.Equal(t, original, decoded["sid"])
	})
}
