// Package session keeps the admin bearer token in a cookie and guards the
// back-office routes.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"loan-portal/internal/apiclient"
)

const (
	LoginPath      = "/admin/login"
	HomePath       = "/admin/loans"
	ExpiredMessage = "Session expired. Please log in again."
)

type Store struct {
	name   string
	secure bool
	maxAge time.Duration
}

func NewStore(cookieName string, secure bool) *Store {
	return &Store{name: cookieName, secure: secure, maxAge: 24 * time.Hour}
}

func (s *Store) Token(c echo.Context) string {
	ck, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}
	return ck.Value
}

func (s *Store) Set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireToken redirects to the login page when no token is stored, and
// otherwise threads the token into the request context for api calls.
func (s *Store) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tok := s.Token(c)
		if tok == "" {
			return c.Redirect(http.StatusFound, LoginPath)
		}
		req := c.Request()
		c.SetRequest(req.WithContext(apiclient.WithToken(req.Context(), tok)))
		return next(c)
	}
}

// ExpireOnUnauthorized turns any 401 from the api into a forced logout.
func (s *Store) ExpireOnUnauthorized(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil || !errors.Is(err, apiclient.ErrUnauthorized) {
			return err
		}
		s.Clear(c)
		SetFlash(c, FlashError, ExpiredMessage)
		return c.Redirect(http.StatusSeeOther, LoginPath)
	}
}
