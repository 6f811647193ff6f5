package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"duka/internal/entities"
	"duka/pkg/trm"
	"duka/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entities.Status, at time.Time) (bool, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (bool, error)
}

type CustomerChecker interface {
	CustomerExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type StockRepo interface {
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error)
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, orderID uuid.UUID, status entities.Status) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
}

type CreateOrderInput struct {
	CustomerID  uuid.UUID
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	Notes       string
	Items       []CreateOrderItem
}

type CreateOrderItem struct {
	ProductID uuid.UUID
	Quantity  int
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        OrderRepo
	customers   CustomerChecker
	products    StockRepo
	notifier    Notifier
	cache       Cache
	transitions entities.TransitionTable
}

type OrderServiceOption func(*orderService)

// WithTransitions swaps the transition table, the business rule stays
// adjustable without touching handlers.
func WithTransitions(t entities.TransitionTable) OrderServiceOption {
	return func(s *orderService) { s.transitions = t }
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	customers CustomerChecker,
	products StockRepo,
	notifier Notifier,
	cache Cache,
	opts ...OrderServiceOption,
) *orderService {
	s := &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		repo:        repo,
		customers:   customers,
		products:    products,
		notifier:    notifier,
		cache:       cache,
		transitions: entities.DefaultTransitions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder persists a new order in the Pending state. Any status the
// caller supplied has been discarded upstream, orders always start
// Pending. When items are present the total is computed from current
// product prices and stock is taken in the same transaction. No
// notification is sent on creation, only transitions notify.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if in.TotalAmount.IsNegative() {
		return entities.Order{}, fmt.Errorf("%w: total_amount must be non-negative", entities.ErrValidation)
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return entities.Order{}, fmt.Errorf("%w: item quantity must be at least 1", entities.ErrValidation)
		}
	}

	exists, err := s.customers.CustomerExists(ctx, in.CustomerID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return entities.Order{}, entities.ErrCustomerNotFound
	}

	now := time.Now().UTC()
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	order := entities.Order{
		ID:          uuid.New(),
		CustomerID:  in.CustomerID,
		Status:      entities.StatusPending,
		TotalAmount: in.TotalAmount,
		Notes:       in.Notes,
		OrderDate:   orderDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if len(in.Items) > 0 {
			total := decimal.Zero
			items := make([]entities.OrderItem, 0, len(in.Items))

			for _, item := range in.Items {
				product, err := s.products.GetProductByID(ctx, item.ProductID)
				if err != nil {
					return err
				}

				ok, err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: %s", entities.ErrInsufficientStock, product.Name)
				}

				items = append(items, entities.OrderItem{
					ID:          uuid.New(),
					ProductID:   item.ProductID,
					Quantity:    item.Quantity,
					PriceAtTime: product.Price,
				})
				total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}

			order.Items = items
			order.TotalAmount = total
		}

		if err := s.repo.InsertOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order created", slog.String("order_id", order.ID.String()))
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	if data, ok := s.cache.Get(id.String()); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id.String()), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id.String()), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(id.String(), data)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx, customerID, limit, offset)
}

// UpdateOrderStatus applies one transition of the order state machine.
// The write is conditional on the status read inside the same
// transaction, so two racing updates cannot both win. The notification
// goes out strictly after commit; a delivery failure never turns a
// persisted update into a client-visible error.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, next entities.Status) (entities.Order, error) {
	if !next.Valid() {
		return entities.Order{}, fmt.Errorf("%w: %q", entities.ErrInvalidStatus, next)
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}

		if !s.transitions.Allowed(order.Status, next) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, next)
		}

		now := time.Now().UTC()
		ok, err := s.repo.UpdateOrderStatus(ctx, id, order.Status, next, now)
		if err != nil {
			return err
		}
		if !ok {
			// a concurrent writer moved the order first
			return fmt.Errorf("%w: order changed concurrently", entities.ErrInvalidTransition)
		}

		order.Status = next
		order.UpdatedAt = now
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Del(id.String())

	if err := s.notifier.NotifyStatusChange(ctx, id, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to send status notification",
			slog.String("order_id", id.String()),
			slog.String("status", next.String()),
			slog.Any("error", err),
		)
	}

	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrOrderNotFound
	}
	s.cache.Del(id.String())
	return nil
}
