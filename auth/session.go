package auth

import (
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
)

const (
	SessionName = "admin-session"

	keyLoggedIn = "isLoggedIn"
	keyEmail    = "email"
)

func init() {
	gob.Register(dashboard.Notice{})
}

// Sessions stores the admin login flag and pending notices in a signed,
// encrypted cookie.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(secret string, maxAge time.Duration, secure bool) *Sessions {
	blockKey := sha256.Sum256([]byte(secret))
	store := sessions.NewCookieStore([]byte(secret), blockKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

// Current returns the logged-in admin email. ok is false for a missing,
// tampered or logged-out session.
func (s *Sessions) Current(r *http.Request) (email string, ok bool) {
	sess, err := s.store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	loggedIn, _ := sess.Values[keyLoggedIn].(bool)
	if !loggedIn {
		return "", false
	}
	email, _ = sess.Values[keyEmail].(string)
	return email, true
}

func (s *Sessions) Login(w http.ResponseWriter, r *http.Request, email string) error {
	// A cookie that fails to decode yields a fresh session, which is what
	// a new login wants anyway.
	sess, _ := s.store.Get(r, SessionName)
	sess.Values[keyLoggedIn] = true
	sess.Values[keyEmail] = email
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Sessions) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, SessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// AddNotice queues n for the next rendered page.
func (s *Sessions) AddNotice(w http.ResponseWriter, r *http.Request, n dashboard.Notice) error {
	sess, _ := s.store.Get(r, SessionName)
	sess.AddFlash(n)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save notice: %w", err)
	}
	return nil
}

// Notices pops every queued notice.
func (s *Sessions) Notices(w http.ResponseWriter, r *http.Request) []dashboard.Notice {
	sess, err := s.store.Get(r, SessionName)
	if err != nil {
		return nil
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	notices := make([]dashboard.Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(dashboard.Notice); ok {
			notices = append(notices, n)
		}
	}
	if err := sess.Save(r, w); err != nil {
		log.Printf("notices: %v", err)
	}
	return notices
}
