package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PhoneNumber string
	Address     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPhoneTaken       = errors.New("phone number already in use")
)
