package handler

import (
	"time"

	"duka/internal/entities"
	"duka/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the wire representation of an order.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	OrderDate   time.Time       `json:"order_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []OrderItem     `json:"items,omitempty"`
}

type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CreateOrderRequest struct {
	CustomerID  uuid.UUID       `json:"customer_id" validate:"required"`
	OrderDate   *time.Time      `json:"order_date,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	// Status is accepted for wire compatibility and ignored: orders
	// always start Pending.
	Status string                   `json:"status,omitempty"`
	Items  []CreateOrderItemRequest `json:"items,omitempty" validate:"dive"`
}

type CreateOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      o.Status.String(),
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		OrderDate:   o.OrderDate,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	for _, it := range o.Items {
		order.Items = append(order.Items, OrderItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime,
			Subtotal:    it.Subtotal(),
		})
	}
	return order
}

func CreateOrderRequestToInput(req CreateOrderRequest) service.CreateOrderInput {
	in := service.CreateOrderInput{
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
	if req.OrderDate != nil {
		in.OrderDate = *req.OrderDate
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, service.CreateOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return in
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone_number,omitempty"`
	Address  string `json:"address,omitempty"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone_number,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Principal struct {
	UserID     uuid.UUID `json:"user_id"`
	CustomerID uuid.UUID `json:"customer_id,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

func PrincipalEntityToJSON(p entities.Principal) Principal {
	return Principal{
		UserID:     p.UserID,
		CustomerID: p.CustomerID,
		IsAdmin:    p.IsAdmin,
	}
}

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"in_stock"`
	IsActive    bool            `json:"is_active"`
	CategoryIDs []uuid.UUID     `json:"category_ids,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsActive    bool            `json:"is_active"`
	CategoryIDs []uuid.UUID     `json:"category_ids,omitempty"`
}

type StockUpdateRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

type CategoryAverageResponse struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		IsActive:    p.IsActive,
		CategoryIDs: p.CategoryIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ProductRequestToInput(req ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
		CategoryIDs: req.CategoryIDs,
	}
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    uuid.UUID `json:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	ParentID    uuid.UUID `json:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active"`
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func CategoryRequestToInput(req CategoryRequest) service.CategoryInput {
	return service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	}
}

type Customer struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomerRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	Address     string    `json:"address,omitempty"`
	IsActive    bool      `json:"is_active"`
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	return Customer{
		ID:          c.ID,
		UserID:      c.UserID,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func CustomerRequestToInput(req CustomerRequest) service.CustomerInput {
	return service.CustomerInput{
		UserID:      req.UserID,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsActive:    req.IsActive,
	}
}
