package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"duka/internal/entities"
	"duka/internal/service"
	mocks "duka/internal/service/mocks"
	txMocks "duka/pkg/trm/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceMocks(t *testing.T) (*mocks.MockOrderRepo, *mocks.MockCustomerChecker, *mocks.MockStockRepo, *mocks.MockNotifier, *mocks.MockCache, *txMocks.MockManager) {
	return mocks.NewMockOrderRepo(t),
		mocks.NewMockCustomerChecker(t),
		mocks.NewMockStockRepo(t),
		mocks.NewMockNotifier(t),
		mocks.NewMockCache(t),
		txMocks.NewMockManager(t)
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
}

func TestOrderService_CreateOrder(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()

	type Mocks struct {
		orderRepo *mocks.MockOrderRepo
		customers *mocks.MockCustomerChecker
		products  *mocks.MockStockRepo
	}

	testCases := []struct {
		name         string
		input        service.CreateOrderInput
		mockBehavior func(m Mocks)
		wantErr      error
		check        func(t *testing.T, got entities.Order)
	}{
		{
			name: "order always starts pending",
			input: service.CreateOrderInput{
				CustomerID:  customerID,
				TotalAmount: decimal.NewFromInt(100),
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().CustomerExists(mock.Anything, customerID).Return(true, nil)
				m.orderRepo.EXPECT().
					InsertOrder(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, o entities.Order) {
						assert.Equal(t, entities.StatusPending, o.Status)
					}).
					Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, entities.StatusPending, got.Status)
				assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(100)))
			},
		},
		{
			name: "negative total rejected before any write",
			input: service.CreateOrderInput{
				CustomerID:  customerID,
				TotalAmount: decimal.NewFromInt(-1),
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "zero item quantity rejected",
			input: service.CreateOrderInput{
				CustomerID: customerID,
				Items:      []service.CreateOrderItem{{ProductID: productID, Quantity: 0}},
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "unknown customer",
			input: service.CreateOrderInput{
				CustomerID:  customerID,
				TotalAmount: decimal.NewFromInt(100),
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().CustomerExists(mock.Anything, customerID).Return(false, nil)
			},
			wantErr: entities.ErrCustomerNotFound,
		},
		{
			name: "total computed from items",
			input: service.CreateOrderInput{
				CustomerID: customerID,
				Items:      []service.CreateOrderItem{{ProductID: productID, Quantity: 2}},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().CustomerExists(mock.Anything, customerID).Return(true, nil)
				m.products.EXPECT().
					GetProductByID(mock.Anything, productID).
					Return(entities.Product{ID: productID, Name: "mug", Price: decimal.NewFromFloat(10.50), Stock: 5}, nil).Once()
				m.products.EXPECT().
					DecrementStock(mock.Anything, productID, 2).
					Return(true, nil).Once()
				m.orderRepo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Order) {
				require.Len(t, got.Items, 1)
				assert.True(t, got.TotalAmount.Equal(decimal.NewFromFloat(21.00)))
				assert.True(t, got.Items[0].PriceAtTime.Equal(decimal.NewFromFloat(10.50)))
			},
		},
		{
			name: "insufficient stock aborts the order",
			input: service.CreateOrderInput{
				CustomerID: customerID,
				Items:      []service.CreateOrderItem{{ProductID: productID, Quantity: 10}},
			},
			mockBehavior: func(m Mocks) {
				m.customers.EXPECT().CustomerExists(mock.Anything, customerID).Return(true, nil)
				m.products.EXPECT().
					GetProductByID(mock.Anything, productID).
					Return(entities.Product{ID: productID, Name: "mug", Stock: 3}, nil).Once()
				m.products.EXPECT().
					DecrementStock(mock.Anything, productID, 10).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, customers, products, notifier, cache, tx := newOrderServiceMocks(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			passthroughTx(tx)

			tc.mockBehavior(Mocks{orderRepo: orderRepo, customers: customers, products: products})

			svc := service.NewOrderService(logger, tx, orderRepo, customers, products, notifier, cache)

			got, err := svc.CreateOrder(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, got)
			}
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	orderID := uuid.New()
	validOrder := entities.Order{ID: orderID, Status: entities.StatusPending, TotalAmount: decimal.NewFromInt(42)}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	type Mocks struct {
		orderRepo *mocks.MockOrderRepo
		cache     *mocks.MockCache
	}

	testCases := []struct {
		name         string
		mockBehavior func(m Mocks)
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success from cache",
			mockBehavior: func(m Mocks) {
				m.cache.EXPECT().Get(orderID.String()).Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(m Mocks) {
				m.cache.EXPECT().Get(orderID.String()).Return(nil, false).Once()
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(validOrder, nil).Once()
				m.cache.EXPECT().Set(orderID.String(), validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(m Mocks) {
				m.cache.EXPECT().Get(orderID.String()).Return(nil, false).Once()
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "second attempt from repo",
			mockBehavior: func(m Mocks) {
				m.cache.EXPECT().Get(orderID.String()).Return(nil, false).Once()
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("some error")).Once()
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(validOrder, nil).Once()
				m.cache.EXPECT().Set(orderID.String(), validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, customers, products, notifier, cache, tx := newOrderServiceMocks(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(Mocks{orderRepo: orderRepo, cache: cache})

			svc := service.NewOrderService(logger, tx, orderRepo, customers, products, notifier, cache)

			got, err := svc.GetOrder(context.Background(), orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()

	type Mocks struct {
		orderRepo *mocks.MockOrderRepo
		notifier  *mocks.MockNotifier
		cache     *mocks.MockCache
	}

	testCases := []struct {
		name         string
		next         entities.Status
		mockBehavior func(m Mocks)
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name: "pending to shipped notifies after commit",
			next: entities.StatusShipped,
			mockBehavior: func(m Mocks) {
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil).Once()
				m.orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusShipped, mock.Anything).
					Return(true, nil).Once()
				m.cache.EXPECT().Del(orderID.String()).Return().Once()
				m.notifier.EXPECT().
					NotifyStatusChange(mock.Anything, orderID, entities.StatusShipped).
					Return(nil).Once()
			},
			wantStatus: entities.StatusShipped,
		},
		{
			name: "notifier failure does not fail the update",
			next: entities.StatusShipped,
			mockBehavior: func(m Mocks) {
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil).Once()
				m.orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusShipped, mock.Anything).
					Return(true, nil).Once()
				m.cache.EXPECT().Del(orderID.String()).Return().Once()
				m.notifier.EXPECT().
					NotifyStatusChange(mock.Anything, orderID, entities.StatusShipped).
					Return(errors.New("kafka down")).Once()
			},
			wantStatus: entities.StatusShipped,
		},
		{
			name:         "unknown status rejected",
			next:         entities.Status("Teleported"),
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name: "pending to delivered is not allowed",
			next: entities.StatusDelivered,
			mockBehavior: func(m Mocks) {
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "self transition rejected",
			next: entities.StatusPending,
			mockBehavior: func(m Mocks) {
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "terminal state cannot move",
			next: entities.StatusShipped,
			mockBehavior: func(m Mocks) {
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusDelivered}, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "concurrent writer wins",
			next: entities.StatusShipped,
			mockBehavior: func(m Mocks) {
				m.orderRepo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{ID: orderID, Status: entities.StatusPending}, nil).Once()
				m.orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusShipped, mock.Anything).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, customers, products, notifier, cache, tx := newOrderServiceMocks(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			passthroughTx(tx)

			tc.mockBehavior(Mocks{orderRepo: orderRepo, notifier: notifier, cache: cache})

			svc := service.NewOrderService(logger, tx, orderRepo, customers, products, notifier, cache)

			got, err := svc.UpdateOrderStatus(context.Background(), orderID, tc.next)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	orderID := uuid.New()

	testCases := []struct {
		name         string
		mockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name: "success evicts cache",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				orderRepo.EXPECT().DeleteOrder(mock.Anything, orderID).Return(true, nil).Once()
				cache.EXPECT().Del(orderID.String()).Return().Once()
			},
		},
		{
			name: "missing order reports not found",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				orderRepo.EXPECT().DeleteOrder(mock.Anything, orderID).Return(false, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, customers, products, notifier, cache, tx := newOrderServiceMocks(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, customers, products, notifier, cache)

			err := svc.DeleteOrder(context.Background(), orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
