package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/projectdragon/dragon/internal/store"
)

// bcryptCost matches the original product's work factor.
const bcryptCost = 10

const sessionCookieName = "sessionToken"

// Cookie lifetime is a constant 7 days regardless of the token's own expiry.
// A 1-hour password session rides in a 7-day cookie; once the embedded token
// expires the cookie just stops verifying.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleSignup creates a new user account. It does not log the user in.
func (s *Server) handleSignup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		c.Logger().Error("bcrypt error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	user, err := s.users.CreateUser(c.Request().Context(), req.Username, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already exists"})
		}
		c.Logger().Error("store error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "error creating user"})
	}

	c.Logger().Infof("User registered: %s", req.Username)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "User created successfully!",
		"userId":  user.ID,
	})
}

// handleSignin authenticates a username/password pair and sets the session
// cookie.
func (s *Server) handleSignin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
	}

	user, err := s.users.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		c.Logger().Error("store error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "error fetching user"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "wrong password"})
	}

	sessionToken, err := s.tokens.SignPasswordSession(user.ID, user.Username)
	if err != nil {
		c.Logger().Error("token error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	s.setSessionCookie(c, sessionToken)

	c.Logger().Infof("User logged in: %s", req.Username)

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Login successful!",
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (s *Server) setSessionCookie(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   s.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
