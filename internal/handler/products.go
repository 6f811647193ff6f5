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
	"github.com/shopspring/decimal"
	"log/slog"
)

type ProductService interface {
	CreateProduct(ctx context.Context, in service.ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in service.ProductInput) (entities.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	CategoryAveragePrice(ctx context.Context, categoryID uuid.UUID) (decimal.Decimal, error)
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ProductsHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
	auth     func(http.Handler) http.Handler
}

func NewProductsHandler(logger *slog.Logger, svc ProductService, auth func(http.Handler) http.Handler) *ProductsHandler {
	return &ProductsHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *ProductsHandler) Init(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		// reads are public
		r.Get("/", h.ListProducts)
		r.Get("/category-average", h.CategoryAverage)
		r.Get("/{product_id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.auth, middleware.Admin)
			r.Post("/", h.CreateProduct)
			r.Put("/{product_id}", h.UpdateProduct)
			r.Post("/{product_id}/stock", h.UpdateStock)
			r.Delete("/{product_id}", h.DeleteProduct)
		})
	})
}

// ListProducts returns products, optionally filtered by category,
// matched against a search term and reordered.
// @Summary      List products
// @Tags         products
// @Param        category  query  string  false  "category id"
// @Param        search    query  string  false  "match name or description"
// @Param        ordering  query  string  false  "name, price or created_at, - prefix for descending"
// @Param        limit     query  int     false  "page size"
// @Param        offset    query  int     false  "page offset"
// @Success      200  {array}  Product
// @Router       /api/products [get]
func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	categoryID := uuid.Nil
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteError(w, "invalid category id", http.StatusBadRequest)
			return
		}
		categoryID = id
	}

	products, err := h.svc.ListProducts(r.Context(), entities.ProductFilter{
		CategoryID: categoryID,
		Search:     r.URL.Query().Get("search"),
		OrderBy:    r.URL.Query().Get("ordering"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CategoryAverage reports the average price of a category's active
// products.
// @Summary      Average product price for a category
// @Tags         products
// @Param        category  query  string  true  "category id"
// @Success      200  {object}  CategoryAverageResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/products/category-average [get]
func (h *ProductsHandler) CategoryAverage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		utils.WriteError(w, "category id required", http.StatusBadRequest)
		return
	}
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		utils.WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	avg, err := h.svc.CategoryAveragePrice(r.Context(), categoryID)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoryAverageResponse{
		CategoryID:   categoryID,
		AveragePrice: avg,
	}, http.StatusOK)
}

// GetProduct returns one product by id.
// @Summary      Get a product
// @Tags         products
// @Param        product_id  path  string  true  "product id"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/products/{product_id} [get]
func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// CreateProduct adds a product to the catalog. Admin only.
// @Summary      Create a product
// @Tags         products
// @Security     BearerAuth
// @Param        body  body  ProductRequest  true  "product"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /api/products [post]
func (h *ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), ProductRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// UpdateProduct replaces a product. Admin only.
// @Summary      Update a product
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path  string          true  "product id"
// @Param        body        body  ProductRequest  true  "product"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/products/{product_id} [put]
func (h *ProductsHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), id, ProductRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// UpdateStock sets the absolute stock level. Admin only.
// @Summary      Set product stock
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path  string              true  "product id"
// @Param        body        body  StockUpdateRequest  true  "stock"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/products/{product_id}/stock [post]
func (h *ProductsHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req StockUpdateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.UpdateStock(r.Context(), id, *req.Stock); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct removes a product. Admin only.
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        product_id  path  string  true  "product id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/products/{product_id} [delete]
func (h *ProductsHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductsHandler) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, entities.ErrProductNotFound.Error(), http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}
