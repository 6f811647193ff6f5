package handler

import (
	"context"
	"net/http"

	"duka/internal/entities"
	"duka/internal/middleware"
	"duka/internal/service"
	"duka/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"log/slog"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, in service.CustomerInput) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, in service.CustomerInput) (entities.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (entities.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type CustomersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CustomerService
	auth     func(http.Handler) http.Handler
}

func NewCustomersHandler(logger *slog.Logger, svc CustomerService, auth func(http.Handler) http.Handler) *CustomersHandler {
	return &CustomersHandler{
		logger:   logger.With(slog.String("handler", "customers")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *CustomersHandler) Init(r chi.Router) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(h.auth)

		// customers can read their own profile, everything else is admin
		r.Get("/{customer_id}", h.GetCustomer)
		r.Put("/{customer_id}", h.UpdateCustomer)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Admin)
			r.Get("/", h.ListCustomers)
			r.Post("/", h.CreateCustomer)
			r.Delete("/{customer_id}", h.DeleteCustomer)
		})
	})
}

// ListCustomers returns all customer profiles. Admin only.
// @Summary      List customers
// @Tags         customers
// @Security     BearerAuth
// @Param        limit   query  int  false  "page size"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  Customer
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomersHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	customers, err := h.svc.ListCustomers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	res := make([]Customer, 0, len(customers))
	for _, c := range customers {
		res = append(res, CustomerEntityToJSON(c))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetCustomer returns one profile. Non-admins only see their own.
// @Summary      Get a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        customer_id  path  string  true  "customer id"
// @Success      200  {object}  Customer
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/customers/{customer_id} [get]
func (h *CustomersHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}
	if !h.canAccess(r, id) {
		utils.WriteError(w, entities.ErrCustomerNotFound.Error(), http.StatusNotFound)
		return
	}

	customer, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

// CreateCustomer creates a profile for an existing user. Admin only.
// @Summary      Create a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        body  body  CustomerRequest  true  "customer"
// @Success      201  {object}  Customer
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "phone already in use"
// @Router       /api/customers [post]
func (h *CustomersHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer, err := h.svc.CreateCustomer(r.Context(), CustomerRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusCreated)
}

// UpdateCustomer replaces a profile. Non-admins only update their own.
// @Summary      Update a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        customer_id  path  string           true  "customer id"
// @Param        body         body  CustomerRequest  true  "customer"
// @Success      200  {object}  Customer
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "phone already in use"
// @Router       /api/customers/{customer_id} [put]
func (h *CustomersHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}
	if !h.canAccess(r, id) {
		utils.WriteError(w, entities.ErrCustomerNotFound.Error(), http.StatusNotFound)
		return
	}

	var req CustomerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer, err := h.svc.UpdateCustomer(r.Context(), id, CustomerRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

// DeleteCustomer removes a profile. Admin only.
// @Summary      Delete a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        customer_id  path  string  true  "customer id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/customers/{customer_id} [delete]
func (h *CustomersHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.customerID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomersHandler) customerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "customer_id"))
	if err != nil {
		utils.WriteError(w, entities.ErrCustomerNotFound.Error(), http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *CustomersHandler) canAccess(r *http.Request, id uuid.UUID) bool {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return false
	}
	return principal.IsAdmin || principal.CustomerID == id
}
