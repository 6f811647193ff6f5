package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"duka/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var customerColumns = []string{"id", "user_id", "phone_number", "address", "is_active", "created_at", "updated_at"}

type customerRepo struct {
	store
}

func NewCustomerRepo(db *sqlx.DB) *customerRepo {
	return &customerRepo{store: newStore(db)}
}

func (r *customerRepo) InsertCustomer(ctx context.Context, c entities.Customer) error {
	query, args := r.qb.Insert("customers").
		Columns(customerColumns...).
		Values(c.ID, c.UserID, c.PhoneNumber, nullString(c.Address), c.IsActive, c.CreatedAt, c.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *customerRepo) UpdateCustomer(ctx context.Context, c entities.Customer) (bool, error) {
	query, args := r.qb.Update("customers").
		Set("phone_number", c.PhoneNumber).
		Set("address", nullString(c.Address)).
		Set("is_active", c.IsActive).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *customerRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error) {
	return r.getCustomer(ctx, sq.Eq{"id": id})
}

func (r *customerRepo) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (entities.Customer, error) {
	return r.getCustomer(ctx, sq.Eq{"user_id": userID})
}

func (r *customerRepo) GetCustomerByPhone(ctx context.Context, phone string) (entities.Customer, error) {
	return r.getCustomer(ctx, sq.Eq{"phone_number": phone})
}

func (r *customerRepo) getCustomer(ctx context.Context, pred sq.Eq) (entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where(pred).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *customerRepo) CustomerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args := r.qb.Select("1").
		From("customers").
		Where(sq.Eq{"id": id, "is_active": true}).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return true, nil
}

func (r *customerRepo) ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var customers []Customer
	if err := r.selectContext(ctx, &customers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}

	result := make([]entities.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerToEntity(c))
	}
	return result, nil
}

func (r *customerRepo) DeleteCustomer(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args := r.qb.Delete("customers").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
