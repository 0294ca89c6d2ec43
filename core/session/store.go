package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core"
)

// Store is the explicit session accessor handed down from the composition
// root; views never reach for ambient global state.
type Store interface {
	// Current returns the session for the request, if any. A missing or
	// undecodable credential reads as "no session".
	Current(c echo.Context) (Session, bool)
	// Save persists the raw credential durably on the client.
	Save(c echo.Context, token string) error
	// Clear drops the credential unconditionally; no upstream round-trip.
	Clear(c echo.Context)
}

// CookieStore keeps the raw credential in a single HttpOnly cookie — the only
// piece of client-side persistence in the whole portal.
type CookieStore struct {
	conf core.SessionConfig
}

var _ Store = (*CookieStore)(nil)

func NewCookieStore(conf core.SessionConfig) *CookieStore {
	return &CookieStore{conf: conf}
}

func (s *CookieStore) Current(c echo.Context) (Session, bool) {
	cookie, err := c.Cookie(s.conf.CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}
	sess, err := Decode(cookie.Value)
	if err != nil {
		return Session{}, false
	}
	return sess, true
}

func (s *CookieStore) Save(c echo.Context, token string) error {
	if _, err := Decode(token); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     s.conf.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.conf.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   s.conf.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.conf.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.conf.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
