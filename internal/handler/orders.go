package handler

import (
	"context"
	"net/http"
	"strconv"

	"duka/internal/entities"
	"duka/internal/middleware"
	"duka/internal/service"
	"duka/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"log/slog"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, next entities.Status) (entities.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type OrdersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	auth     func(http.Handler) http.Handler
}

func NewOrdersHandler(logger *slog.Logger, svc OrderService, auth func(http.Handler) http.Handler) *OrdersHandler {
	return &OrdersHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{order_id}", h.GetOrder)
		r.Patch("/{order_id}", h.UpdateOrderStatus)
		r.Delete("/{order_id}", h.DeleteOrder)
	})
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListOrders returns orders newest first.
// @Summary      List orders
// @Tags         orders
// @Param        limit   query  int  false  "page size"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/orders [get]
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit, offset := pagination(r)

	// non-admins only ever see their own orders
	customerID := uuid.Nil
	if !principal.IsAdmin {
		if principal.CustomerID == uuid.Nil {
			utils.WriteJSON(w, []Order{}, http.StatusOK)
			return
		}
		customerID = principal.CustomerID
	}

	orders, err := h.svc.ListOrders(ctx, customerID, limit, offset)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateOrder places a new order. The order always starts Pending, a
// status in the body is ignored.
// @Summary      Create an order
// @Tags         orders
// @Param        order  body  CreateOrderRequest  true  "order"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "unknown customer"
// @Router       /api/orders [post]
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns one order by id.
// @Summary      Get an order
// @Tags         orders
// @Param        order_id  path  string  true  "order id"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if !h.ownedByCaller(ctx, order) {
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus moves an order along its lifecycle.
// @Summary      Update order status
// @Tags         orders
// @Param        order_id  path  string                    true  "order id"
// @Param        body      body  UpdateOrderStatusRequest  true  "new status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "invalid transition"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id} [patch]
func (h *OrdersHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if !h.canMutate(ctx, w, r, id) {
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, id, entities.Status(req.Status))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder removes an order.
// @Summary      Delete an order
// @Tags         orders
// @Param        order_id  path  string  true  "order id"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_id} [delete]
func (h *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if !h.canMutate(ctx, w, r, id) {
		return
	}

	if err := h.svc.DeleteOrder(ctx, id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrdersHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *OrdersHandler) ownedByCaller(ctx context.Context, order entities.Order) bool {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return false
	}
	return principal.IsAdmin || principal.CustomerID == order.CustomerID
}

// canMutate hides other customers' orders behind a 404, same as reads.
func (h *OrdersHandler) canMutate(ctx context.Context, w http.ResponseWriter, r *http.Request, id uuid.UUID) bool {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if principal.IsAdmin {
		return true
	}

	order, err := h.svc.GetOrder(ctx, id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return false
	}
	if order.CustomerID != principal.CustomerID {
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return false
	}
	return true
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, maxPageSize)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
