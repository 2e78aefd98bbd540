package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectdragon/dragon/internal/mail"
)

type magicLinkRequest struct {
	Email string `json:"email"`
}

// handleSendMagicLink emails a short-lived login link. The address format is
// not validated here; the submitting form is trusted to have done that, so a
// malformed address goes to the mailer as-is.
func (s *Server) handleSendMagicLink(c echo.Context) error {
	var req magicLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}

	magicToken, err := s.tokens.SignMagicLink(req.Email)
	if err != nil {
		c.Logger().Error("token error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	link := fmt.Sprintf("%s/api/auth/verify-magic-link?token=%s", s.cfg.BaseURL, magicToken)

	// No retry on failure; the user just requests another link.
	if err := s.mailer.Send(c.Request().Context(), mail.MagicLinkMessage(req.Email, link)); err != nil {
		c.Logger().Error("mail error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to send magic link"})
	}

	c.Logger().Infof("Magic link sent to: %s", req.Email)

	return c.JSON(http.StatusOK, map[string]string{"message": "Magic link sent successfully."})
}

// handleVerifyMagicLink redeems a magic-link token and starts a session.
// There is no used-token ledger: a link stays redeemable until its 15-minute
// expiry, and replaying it within that window mints another session.
func (s *Server) handleVerifyMagicLink(c echo.Context) error {
	magicToken := c.QueryParam("token")
	if magicToken == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "token is required"})
	}

	claims, err := s.tokens.Verify(magicToken)
	if err != nil || claims.Email == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	sessionToken, err := s.tokens.SignMagicSession(claims.Email)
	if err != nil {
		c.Logger().Error("token error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	s.setSessionCookie(c, sessionToken)

	c.Logger().Infof("Magic link login: %s", claims.Email)

	return c.Redirect(http.StatusFound, "/home")
}
