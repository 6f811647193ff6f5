package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"duka/internal/entities"
	"duka/internal/handler"
	mocks "duka/internal/handler/mocks"
	"duka/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authAs injects a fixed principal, standing in for the real auth
// middleware.
func authAs(p entities.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.ContextWithPrincipal(r.Context(), p)))
		})
	}
}

func newOrdersRouter(t *testing.T, svc *mocks.MockOrderService, p entities.Principal) *chi.Mux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrdersHandler(logger, svc, authAs(p))
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	customerID := uuid.New()
	orderID := uuid.New()
	order := entities.Order{ID: orderID, CustomerID: customerID, Status: entities.StatusPending}

	admin := entities.Principal{UserID: uuid.New(), IsAdmin: true}
	owner := entities.Principal{UserID: uuid.New(), CustomerID: customerID}
	stranger := entities.Principal{UserID: uuid.New(), CustomerID: uuid.New()}

	testCases := []struct {
		name         string
		principal    entities.Principal
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "owner reads own order",
			principal: owner,
			orderID:   orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Pending"`,
		},
		{
			name:      "other customers orders hidden behind 404",
			principal: stranger,
			orderID:   orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(order, nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:      "unknown order",
			principal: admin,
			orderID:   uuid.NewString(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "malformed id",
			principal:    admin,
			orderID:      "not-a-uuid",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusNotFound,
		},
		{
			name:      "internal error",
			principal: admin,
			orderID:   orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrdersRouter(t, svc, tc.principal)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_CreateOrder(t *testing.T) {
	customerID := uuid.New()
	orderID := uuid.New()
	principal := entities.Principal{UserID: uuid.New(), CustomerID: customerID}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created with forced pending status",
			body: `{"customer_id":"` + customerID.String() + `","total_amount":"99.90","status":"Delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{
						ID:          orderID,
						CustomerID:  customerID,
						Status:      entities.StatusPending,
						TotalAmount: decimal.RequireFromString("99.90"),
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"Pending"`,
		},
		{
			name:         "missing customer_id fails validation",
			body:         `{"total_amount":"10"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown customer",
			body: `{"customer_id":"` + customerID.String() + `"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrCustomerNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"customer not found"`,
		},
		{
			name: "insufficient stock",
			body: `{"customer_id":"` + customerID.String() + `","items":[{"product_id":"` + uuid.NewString() + `","quantity":3}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrdersRouter(t, svc, principal)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_UpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()
	admin := entities.Principal{UserID: uuid.New(), IsAdmin: true}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "valid transition",
			body: `{"status":"Shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusShipped).
					Return(entities.Order{ID: orderID, Status: entities.StatusShipped}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Shipped"`,
		},
		{
			name: "invalid transition",
			body: `{"status":"Delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusDelivered).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown status",
			body: `{"status":"Lost"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.Status("Lost")).
					Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "missing status fails validation",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrdersRouter(t, svc, admin)

			req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+orderID.String(), bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_DeleteOrder(t *testing.T) {
	orderID := uuid.New()
	admin := entities.Principal{UserID: uuid.New(), IsAdmin: true}

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "deleted",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := newOrdersRouter(t, svc, admin)

			req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+orderID.String(), nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestOrdersHandler_ListOrders(t *testing.T) {
	customerID := uuid.New()
	orders := []entities.Order{
		{ID: uuid.New(), CustomerID: customerID, Status: entities.StatusPending},
		{ID: uuid.New(), CustomerID: customerID, Status: entities.StatusShipped},
	}

	t.Run("admin sees all orders", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			ListOrders(mock.Anything, uuid.Nil, 10, 0).
			Return(orders, nil).Once()

		r := newOrdersRouter(t, svc, entities.Principal{UserID: uuid.New(), IsAdmin: true})

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("customer only sees own orders", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			ListOrders(mock.Anything, customerID, 10, 0).
			Return(orders, nil).Once()

		r := newOrdersRouter(t, svc, entities.Principal{UserID: uuid.New(), CustomerID: customerID})

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("user without profile gets an empty list", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)

		r := newOrdersRouter(t, svc, entities.Principal{UserID: uuid.New()})

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("pagination params are passed through", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().
			ListOrders(mock.Anything, uuid.Nil, 25, 50).
			Return(nil, nil).Once()

		r := newOrdersRouter(t, svc, entities.Principal{UserID: uuid.New(), IsAdmin: true})

		req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=25&offset=50", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
