package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category is a product category. ParentID is uuid.Nil for root
// categories, forming a tree otherwise.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	ParentID    uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already in use")
)
