package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. A magic link only has to survive the round trip through
// the user's inbox; the session it mints lasts a week. Password logins get
// the shorter session the original product shipped with.
const (
	MagicLinkTTL       = 15 * time.Minute
	PasswordSessionTTL = time.Hour
	MagicSessionTTL    = 7 * 24 * time.Hour
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed token, or elapsed expiry. Callers must treat all of them as
// "not authenticated" and are given no way to tell them apart.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by every token this service issues. Which
// fields are set depends on the token variant: password sessions carry
// UserID and Username, magic links and their sessions carry Email.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Service signs and verifies bearer tokens with a single shared secret.
// The secret is injected at construction so tests can run with their own.
type Service struct {
	secret []byte
}

// NewService creates a token service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Sign issues an HS256 token for the given claims, expiring after ttl.
func (s *Service) Sign(claims Claims, ttl time.Duration) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// SignPasswordSession issues a session token for a password login.
func (s *Service) SignPasswordSession(userID, username string) (string, error) {
	return s.Sign(Claims{UserID: userID, Username: username}, PasswordSessionTTL)
}

// SignMagicLink issues the short-lived token embedded in a magic link.
// Proves control of the email address, nothing more.
func (s *Service) SignMagicLink(email string) (string, error) {
	return s.Sign(Claims{Email: email}, MagicLinkTTL)
}

// SignMagicSession issues the session token minted when a magic link is
// redeemed.
func (s *Service) SignMagicSession(email string) (string, error) {
	return s.Sign(Claims{Email: email}, MagicSessionTTL)
}

// Verify parses and validates a token, returning its claims. Any failure
// comes back as ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
