package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash []byte
	Phone        string
	Address      string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is an issued bearer token. Tokens are opaque, expiry is
// enforced on every lookup.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Principal is the authenticated identity attached to a request.
// CustomerID is uuid.Nil when the user has no customer profile yet.
type Principal struct {
	UserID     uuid.UUID
	CustomerID uuid.UUID
	IsAdmin    bool
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)
