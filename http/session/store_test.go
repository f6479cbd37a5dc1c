package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cairn-web/cairn"
	"github.com/cairn-web/cairn/http/session"
	"github.com/stretchr/testify/require"
)

func TestNewStoreService(t *testing.T) {
	notHex := "😅"
	hex := "ABCD"

	tcs := []struct {
		name string
		cfg  session.Config
		err  error
	}{
		{"Bad-Env", session.Config{Env: "LOCALHOST", AuthKey: hex, EncryptKey: hex}, cairn.ErrBadConfig},
		{"Bad-Auth-Key", session.Config{Env: cairn.Testing, AuthKey: notHex, EncryptKey: hex}, cairn.ErrBadConfig},
		{"Bad-Encrypt-Key", session.Config{Env: cairn.Testing, AuthKey: hex, EncryptKey: notHex}, cairn.ErrBadConfig},
		{"Valid", session.Config{Env: cairn.Testing, AuthKey: hex, EncryptKey: hex}, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := session.NewStoreService(tc.cfg)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Zero(t, svc)
				return
			}

			require.Nil(t, err)
			require.NotZero(t, svc)

			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			require.NotPanics(t, func() { svc.GetSession(r) })
		})
	}
}

func TestSessionFlashes(t *testing.T) {
	// Arrange
	svc, err := session.NewStoreService(session.Config{Env: cairn.Testing, AuthKey: "ABCD", EncryptKey: "ABCD"})
	require.Nil(t, err)

	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	s, err := svc.GetSession(r)
	require.Nil(t, err)

	flash := session.Flash{Class: session.FlashSuccess, Msg: "it worked"}
	require.Nil(t, s.SetFlash(w, r, flash))

	// Act
	flashes := s.Flashes(w, r)

	// Assert: read once, then gone
	require.Equal(t, []session.Flash{flash}, flashes)
	require.Empty(t, s.Flashes(w, r))
}

func TestSessionSetGet(t *testing.T) {
	// Arrange
	svc, err := session.NewStoreService(session.Config{Env: cairn.Testing, AuthKey: "ABCD", EncryptKey: "ABCD"})
	require.Nil(t, err)

	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w := httptest.NewRecorder()

	s, err := svc.GetSession(r)
	require.Nil(t, err)

	// Act
	require.Nil(t, s.Set(w, r, "theme", "dark"))

	// Assert
	require.Equal(t, "dark", s.Get("theme"))
	require.Nil(t, s.Get("nope"))
}
