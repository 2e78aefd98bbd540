package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// hasValidSession reports whether the request carries a session cookie that
// verifies. A missing cookie and an invalid or expired token are the same
// answer; nothing here ever returns an error.
func (s *Server) hasValidSession(c echo.Context) bool {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	_, err = s.tokens.Verify(cookie.Value)
	return err == nil
}

// requireSession guards API routes: no valid session means 401.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.hasValidSession(c) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return next(c)
	}
}

// privatePage guards page routes: no valid session means a redirect back to
// the login page.
func (s *Server) privatePage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.hasValidSession(c) {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}

// publicPage keeps authenticated users off the login page by sending them to
// the private landing route.
func (s *Server) publicPage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.hasValidSession(c) {
			return c.Redirect(http.StatusFound, "/home")
		}
		return next(c)
	}
}
