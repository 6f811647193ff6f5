package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	IsActive    bool
	CategoryIDs []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductFilter narrows and orders a product listing. CategoryID of
// uuid.Nil and an empty Search match everything; OrderBy is one of
// "name", "price", "created_at", with a "-" prefix for descending.
type ProductFilter struct {
	CategoryID uuid.UUID
	Search     string
	OrderBy    string
	Limit      int
	Offset     int
}

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
)
