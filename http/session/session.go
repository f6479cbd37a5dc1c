package session

import (
	"net/http"

	gorilla "github.com/gorilla/sessions"
)

const (
	// Default Flash classes
	FlashError   = "error"
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"

	// Default Flash Msg
	DefaultErrMsg = "Uh oh! We've run into an issue."
)

// A Flash is a one-time message stored in a session until read.
type Flash struct {
	Class string `json:"class"`
	Msg   string `json:"msg"`
}

// The Sessionable wraps methods for adding values to, deleting, and getting
// values from a session associated with an *http.Request,
// saving those to the session store, and managing flash messages.
type Sessionable interface {
	Delete(w http.ResponseWriter, r *http.Request) error
	Flashes(w http.ResponseWriter, r *http.Request) []Flash
	Get(key string) any
	Save(w http.ResponseWriter, r *http.Request) error
	Set(w http.ResponseWriter, r *http.Request, key string, val any) error
	SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error
}

// A Session provides all functionality for managing a fully featured session.
//
// Its functionality is implemented by lightly wrapping a gorilla.Session.
type Session struct {
	s *gorilla.Session
}

// NewSession constructs a Session from a *gorilla.Session.
func NewSession(g *gorilla.Session) Session { return Session{s: g} }

// Delete removes a session by making the MaxAge negative.
func (s Session) Delete(w http.ResponseWriter, r *http.Request) error {
	s.s.Options.MaxAge = -1
	return s.Save(w, r)
}

// Flashes retrieves []Flash stored in the session.
func (s Session) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	raw := s.s.Flashes()
	fs := make([]Flash, 0)
	for _, f := range raw {
		flash, ok := f.(Flash)
		if !ok {
			continue
		}

		fs = append(fs, flash)
	}
	if len(fs) > 0 {
		// NOTE: Flashes are removed after they are accessed,
		// but the session needs to be saved for them to be finally removed
		if err := s.Save(w, r); err != nil {
			return nil
		}
	}

	return fs
}

// Get retrieves a value from the session according to the key passed in.
func (s Session) Get(key string) any {
	return s.s.Values[key]
}

// Save wraps gorilla.Session.Save, saving the session in the request.
func (s Session) Save(w http.ResponseWriter, r *http.Request) error { return s.s.Save(r, w) }

// Set stores a value according to the key passed in on the session.
func (s Session) Set(w http.ResponseWriter, r *http.Request, key string, val any) error {
	s.s.Values[key] = val
	return s.Save(w, r)
}

// SetFlash stores the passed in Flash in the session.
func (s Session) SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error {
	s.s.AddFlash(flash)
	return s.Save(w, r)
}
