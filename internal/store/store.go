package store

import (
	"context"
	"errors"
	"time"
)

// User is a stored account. The password hash never serializes.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when an insert violates username
	// uniqueness. Uniqueness is enforced by the store itself, not by a
	// lookup beforehand, so concurrent signups cannot race past it.
	ErrUsernameTaken = errors.New("username already exists")
)

// UserStore is the credential store: the system of record for usernames and
// password hashes. Users are created and read, never updated or deleted.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}
