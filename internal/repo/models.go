package repo

import (
	"database/sql"
	"time"

	"duka/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uuid.UUID       `db:"id"`
	CustomerID  uuid.UUID       `db:"customer_id"`
	Status      string          `db:"status"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Notes       sql.NullString  `db:"notes"`
	OrderDate   time.Time       `db:"order_date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type OrderItem struct {
	ID          uuid.UUID       `db:"id"`
	OrderID     uuid.UUID       `db:"order_id"`
	ProductID   uuid.UUID       `db:"product_id"`
	Quantity    int             `db:"quantity"`
	PriceAtTime decimal.Decimal `db:"price_at_time"`
}

type Product struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type ProductCategory struct {
	ProductID  uuid.UUID `db:"product_id"`
	CategoryID uuid.UUID `db:"category_id"`
}

type Category struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	ParentID    uuid.NullUUID  `db:"parent_id"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type Customer struct {
	ID          uuid.UUID      `db:"id"`
	UserID      uuid.UUID      `db:"user_id"`
	PhoneNumber string         `db:"phone_number"`
	Address     sql.NullString `db:"address"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type User struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	Username     string         `db:"username"`
	PasswordHash []byte         `db:"password_hash"`
	Phone        sql.NullString `db:"phone"`
	Address      sql.NullString `db:"address"`
	IsAdmin      bool           `db:"is_admin"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Session struct {
	Token     string    `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      entities.Status(o.Status),
		TotalAmount: o.TotalAmount,
		Notes:       nullStringToString(o.Notes),
		OrderDate:   o.OrderDate,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		ProductID:   i.ProductID,
		Quantity:    i.Quantity,
		PriceAtTime: i.PriceAtTime,
	}
}

func ProductToEntity(p Product, categoryIDs []uuid.UUID) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: nullStringToString(p.Description),
		Price:       p.Price,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CategoryIDs: categoryIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func CategoryToEntity(c Category) entities.Category {
	cat := entities.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: nullStringToString(c.Description),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.ParentID.Valid {
		cat.ParentID = c.ParentID.UUID
	}
	return cat
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:          c.ID,
		UserID:      c.UserID,
		PhoneNumber: c.PhoneNumber,
		Address:     nullStringToString(c.Address),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Phone:        nullStringToString(u.Phone),
		Address:      nullStringToString(u.Address),
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func SessionToEntity(s Session) entities.Session {
	return entities.Session{
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}
