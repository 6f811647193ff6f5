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

type CategoryService interface {
	CreateCategory(ctx context.Context, in service.CategoryInput) (entities.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in service.CategoryInput) (entities.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (entities.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type CategoriesHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CategoryService
	auth     func(http.Handler) http.Handler
}

func NewCategoriesHandler(logger *slog.Logger, svc CategoryService, auth func(http.Handler) http.Handler) *CategoriesHandler {
	return &CategoriesHandler{
		logger:   logger.With(slog.String("handler", "categories")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *CategoriesHandler) Init(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/{category_id}", h.GetCategory)

		r.Group(func(r chi.Router) {
			r.Use(h.auth, middleware.Admin)
			r.Post("/", h.CreateCategory)
			r.Put("/{category_id}", h.UpdateCategory)
			r.Delete("/{category_id}", h.DeleteCategory)
		})
	})
}

// ListCategories returns all categories.
// @Summary      List categories
// @Tags         categories
// @Param        limit   query  int  false  "page size"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  Category
// @Router       /api/categories [get]
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	categories, err := h.svc.ListCategories(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	res := make([]Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryEntityToJSON(c))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetCategory returns one category by id.
// @Summary      Get a category
// @Tags         categories
// @Param        category_id  path  string  true  "category id"
// @Success      200  {object}  Category
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/categories/{category_id} [get]
func (h *CategoriesHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoryEntityToJSON(category), http.StatusOK)
}

// CreateCategory adds a category. Admin only.
// @Summary      Create a category
// @Tags         categories
// @Security     BearerAuth
// @Param        body  body  CategoryRequest  true  "category"
// @Success      201  {object}  Category
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoriesHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), CategoryRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoryEntityToJSON(category), http.StatusCreated)
}

// UpdateCategory replaces a category. Admin only.
// @Summary      Update a category
// @Tags         categories
// @Security     BearerAuth
// @Param        category_id  path  string           true  "category id"
// @Param        body         body  CategoryRequest  true  "category"
// @Success      200  {object}  Category
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/categories/{category_id} [put]
func (h *CategoriesHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(), id, CategoryRequestToInput(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CategoryEntityToJSON(category), http.StatusOK)
}

// DeleteCategory removes a category. Admin only.
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        category_id  path  string  true  "category id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/categories/{category_id} [delete]
func (h *CategoriesHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.categoryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoriesHandler) categoryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "category_id"))
	if err != nil {
		utils.WriteError(w, entities.ErrCategoryNotFound.Error(), http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}
