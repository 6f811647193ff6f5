package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"duka/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	orderColumns     = []string{"id", "customer_id", "status", "total_amount", "notes", "order_date", "created_at", "updated_at"}
	orderItemColumns = []string{"id", "order_id", "product_id", "quantity", "price_at_time"}
)

type orderRepo struct {
	store
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{store: newStore(db)}
}

func (r *orderRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.CustomerID, o.Status.String(), o.TotalAmount, nullString(o.Notes), o.OrderDate, o.CreatedAt, o.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(orderItemColumns...)
	for _, it := range o.Items {
		q = q.Values(it.ID, o.ID, it.ProductID, it.Quantity, it.PriceAtTime)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// ListOrders returns orders newest first. customerID narrows the list
// to one customer when it is not uuid.Nil.
func (r *orderRepo) ListOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if customerID != uuid.Nil {
		q = q.Where(sq.Eq{"customer_id": customerID})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[uuid.UUID][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}

	return result, nil
}

// UpdateOrderStatus writes the new status only when the row still
// carries the status the caller read. Returns false when the row is
// gone or another writer got there first.
func (r *orderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entities.Status, at time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", to.String()).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": from.String()}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *orderRepo) DeleteOrder(ctx context.Context, id uuid.UUID) (bool, error) {
	// order_items go with the order via ON DELETE CASCADE
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
