package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"duka/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRepo interface {
	InsertProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, p entities.Product) (bool, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	AveragePrice(ctx context.Context, categoryID uuid.UUID) (decimal.Decimal, error)
	SetStock(ctx context.Context, id uuid.UUID, stock int) (bool, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
}

type CategoryRepo interface {
	InsertCategory(ctx context.Context, c entities.Category) error
	UpdateCategory(ctx context.Context, c entities.Category) (bool, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (entities.Category, error)
	GetCategoryByName(ctx context.Context, name string) (entities.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error)
	CategoryExists(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	IsActive    bool
	CategoryIDs []uuid.UUID
}

type CategoryInput struct {
	Name        string
	Description string
	ParentID    uuid.UUID
	IsActive    bool
}

type catalogService struct {
	logger     *slog.Logger
	products   ProductRepo
	categories CategoryRepo
}

func NewCatalogService(logger *slog.Logger, products ProductRepo, categories CategoryRepo) *catalogService {
	return &catalogService{
		logger:     logger.With(slog.String("service", "catalog")),
		products:   products,
		categories: categories,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (entities.Product, error) {
	if err := s.validateProduct(ctx, in); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	product := entities.Product{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
		CategoryIDs: in.CategoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.InsertProduct(ctx, product); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, in ProductInput) (entities.Product, error) {
	if err := s.validateProduct(ctx, in); err != nil {
		return entities.Product{}, err
	}

	existing, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.Stock = in.Stock
	existing.IsActive = in.IsActive
	existing.CategoryIDs = in.CategoryIDs
	existing.UpdatedAt = time.Now().UTC()

	ok, err := s.products.UpdateProduct(ctx, existing)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return existing, nil
}

func (s *catalogService) validateProduct(ctx context.Context, in ProductInput) error {
	if !in.Price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than zero", entities.ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", entities.ErrValidation)
	}
	for _, categoryID := range in.CategoryIDs {
		exists, err := s.categories.CategoryExists(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return entities.ErrCategoryNotFound
		}
	}
	return nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return s.products.GetProductByID(ctx, id)
}

var productOrderings = map[string]struct{}{
	"name": {}, "price": {}, "created_at": {},
}

func (s *catalogService) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	if f.OrderBy != "" {
		if _, ok := productOrderings[strings.TrimPrefix(f.OrderBy, "-")]; !ok {
			return nil, fmt.Errorf("%w: unknown ordering %q", entities.ErrValidation, f.OrderBy)
		}
	}
	return s.products.ListProducts(ctx, f)
}

// CategoryAveragePrice reports the mean price of a category's active
// products. Zero when the category has none.
func (s *catalogService) CategoryAveragePrice(ctx context.Context, categoryID uuid.UUID) (decimal.Decimal, error) {
	exists, err := s.categories.CategoryExists(ctx, categoryID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return decimal.Zero, entities.ErrCategoryNotFound
	}
	return s.products.AveragePrice(ctx, categoryID)
}

func (s *catalogService) UpdateStock(ctx context.Context, id uuid.UUID, stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", entities.ErrValidation)
	}
	ok, err := s.products.SetStock(ctx, id, stock)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	if !ok {
		return entities.ErrProductNotFound
	}
	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	ok, err := s.products.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !ok {
		return entities.ErrProductNotFound
	}
	return nil
}

func (s *catalogService) CreateCategory(ctx context.Context, in CategoryInput) (entities.Category, error) {
	if err := s.validateParent(ctx, in.ParentID); err != nil {
		return entities.Category{}, err
	}
	if err := s.checkCategoryName(ctx, in.Name, uuid.Nil); err != nil {
		return entities.Category{}, err
	}

	now := time.Now().UTC()
	category := entities.Category{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categories.InsertCategory(ctx, category); err != nil {
		return entities.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (entities.Category, error) {
	if in.ParentID == id {
		return entities.Category{}, fmt.Errorf("%w: category cannot be its own parent", entities.ErrValidation)
	}
	if err := s.validateParent(ctx, in.ParentID); err != nil {
		return entities.Category{}, err
	}
	if err := s.checkCategoryName(ctx, in.Name, id); err != nil {
		return entities.Category{}, err
	}

	existing, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.ParentID = in.ParentID
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()

	ok, err := s.categories.UpdateCategory(ctx, existing)
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if !ok {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	return existing, nil
}

// checkCategoryName enforces unique category names. selfID lets an
// update keep its current name.
func (s *catalogService) checkCategoryName(ctx context.Context, name string, selfID uuid.UUID) error {
	other, err := s.categories.GetCategoryByName(ctx, name)
	if errors.Is(err, entities.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if other.ID != selfID {
		return entities.ErrCategoryNameTaken
	}
	return nil
}

func (s *catalogService) validateParent(ctx context.Context, parentID uuid.UUID) error {
	if parentID == uuid.Nil {
		return nil
	}
	exists, err := s.categories.CategoryExists(ctx, parentID)
	if err != nil {
		return fmt.Errorf("failed to check parent category: %w", err)
	}
	if !exists {
		return entities.ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (entities.Category, error) {
	return s.categories.GetCategoryByID(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error) {
	return s.categories.ListCategories(ctx, limit, offset)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	ok, err := s.categories.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !ok {
		return entities.ErrCategoryNotFound
	}
	return nil
}
