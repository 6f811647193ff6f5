package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"duka/internal/entities"
	"duka/internal/service"
	"duka/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogMocks(t *testing.T) (*mocks.MockProductRepo, *mocks.MockCategoryRepo) {
	return mocks.NewMockProductRepo(t), mocks.NewMockCategoryRepo(t)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	validInput := service.ProductInput{
		Name:        "kettle",
		Price:       decimal.NewFromInt(25),
		Stock:       10,
		IsActive:    true,
		CategoryIDs: []uuid.UUID{categoryID},
	}

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().CategoryExists(ctx, categoryID).Return(true, nil)
		products.EXPECT().InsertProduct(ctx, mock.AnythingOfType("entities.Product")).
			Run(func(_ context.Context, p entities.Product) {
				assert.Equal(t, "kettle", p.Name)
				assert.True(t, p.Price.Equal(decimal.NewFromInt(25)))
				assert.NotEqual(t, uuid.Nil, p.ID)
			}).Return(nil)

		product, err := svc.CreateProduct(ctx, validInput)
		require.NoError(t, err)
		assert.Equal(t, 10, product.Stock)
	})

	t.Run("non positive price rejected", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		in := validInput
		in.Price = decimal.Zero
		_, err := svc.CreateProduct(ctx, in)
		require.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		in := validInput
		in.Stock = -1
		_, err := svc.CreateProduct(ctx, in)
		require.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("unknown category", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().CategoryExists(ctx, categoryID).Return(false, nil)
		_, err := svc.CreateProduct(ctx, validInput)
		require.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	input := service.ProductInput{
		Name:  "kettle v2",
		Price: decimal.NewFromInt(30),
		Stock: 5,
	}

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().GetProductByID(ctx, productID).
			Return(entities.Product{ID: productID, Name: "kettle"}, nil)
		products.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("entities.Product")).
			Run(func(_ context.Context, p entities.Product) {
				assert.Equal(t, productID, p.ID)
				assert.Equal(t, "kettle v2", p.Name)
			}).Return(true, nil)

		product, err := svc.UpdateProduct(ctx, productID, input)
		require.NoError(t, err)
		assert.Equal(t, "kettle v2", product.Name)
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().GetProductByID(ctx, productID).
			Return(entities.Product{ID: productID}, nil)
		products.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("entities.Product")).
			Return(false, nil)

		_, err := svc.UpdateProduct(ctx, productID, input)
		require.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().GetProductByID(ctx, productID).
			Return(entities.Product{}, entities.ErrProductNotFound)
		_, err := svc.UpdateProduct(ctx, productID, input)
		require.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestCatalogService_UpdateStock(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().SetStock(ctx, productID, 7).Return(true, nil)
		require.NoError(t, svc.UpdateStock(ctx, productID, 7))
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		require.ErrorIs(t, svc.UpdateStock(ctx, productID, -1), entities.ErrValidation)
	})

	t.Run("not found", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().SetStock(ctx, productID, 7).Return(false, nil)
		require.ErrorIs(t, svc.UpdateStock(ctx, productID, 7), entities.ErrProductNotFound)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("filter passes through", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		filter := entities.ProductFilter{Search: "kettle", OrderBy: "-price", Limit: 10}
		products.EXPECT().ListProducts(ctx, filter).Return([]entities.Product{}, nil)

		_, err := svc.ListProducts(ctx, filter)
		require.NoError(t, err)
	})

	t.Run("unknown ordering rejected before the query", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		_, err := svc.ListProducts(ctx, entities.ProductFilter{OrderBy: "stock; DROP TABLE products"})
		require.ErrorIs(t, err, entities.ErrValidation)
	})
}

func TestCatalogService_CategoryAveragePrice(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().CategoryExists(ctx, categoryID).Return(true, nil)
		products.EXPECT().AveragePrice(ctx, categoryID).
			Return(decimal.RequireFromString("17.25"), nil)

		avg, err := svc.CategoryAveragePrice(ctx, categoryID)
		require.NoError(t, err)
		assert.True(t, avg.Equal(decimal.RequireFromString("17.25")))
	})

	t.Run("unknown category", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().CategoryExists(ctx, categoryID).Return(false, nil)

		_, err := svc.CategoryAveragePrice(ctx, categoryID)
		require.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().DeleteProduct(ctx, productID).Return(true, nil)
		require.NoError(t, svc.DeleteProduct(ctx, productID))
	})

	t.Run("not found", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().DeleteProduct(ctx, productID).Return(false, nil)
		require.ErrorIs(t, svc.DeleteProduct(ctx, productID), entities.ErrProductNotFound)
	})

	t.Run("repo failure", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		products.EXPECT().DeleteProduct(ctx, productID).Return(false, errors.New("db down"))
		require.Error(t, svc.DeleteProduct(ctx, productID))
	})
}

func TestCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	parentID := uuid.New()

	t.Run("success without parent", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().GetCategoryByName(ctx, "appliances").
			Return(entities.Category{}, entities.ErrCategoryNotFound)
		categories.EXPECT().InsertCategory(ctx, mock.AnythingOfType("entities.Category")).Return(nil)

		category, err := svc.CreateCategory(ctx, service.CategoryInput{Name: "appliances", IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, "appliances", category.Name)
		assert.Equal(t, uuid.Nil, category.ParentID)
	})

	t.Run("success with parent", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().CategoryExists(ctx, parentID).Return(true, nil)
		categories.EXPECT().GetCategoryByName(ctx, "kettles").
			Return(entities.Category{}, entities.ErrCategoryNotFound)
		categories.EXPECT().InsertCategory(ctx, mock.AnythingOfType("entities.Category")).Return(nil)

		category, err := svc.CreateCategory(ctx, service.CategoryInput{Name: "kettles", ParentID: parentID})
		require.NoError(t, err)
		assert.Equal(t, parentID, category.ParentID)
	})

	t.Run("unknown parent", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().CategoryExists(ctx, parentID).Return(false, nil)
		_, err := svc.CreateCategory(ctx, service.CategoryInput{Name: "kettles", ParentID: parentID})
		require.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().GetCategoryByName(ctx, "appliances").
			Return(entities.Category{ID: uuid.New(), Name: "appliances"}, nil)

		_, err := svc.CreateCategory(ctx, service.CategoryInput{Name: "appliances"})
		require.ErrorIs(t, err, entities.ErrCategoryNameTaken)
	})
}

func TestCatalogService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().GetCategoryByName(ctx, "new").
			Return(entities.Category{}, entities.ErrCategoryNotFound)
		categories.EXPECT().GetCategoryByID(ctx, categoryID).
			Return(entities.Category{ID: categoryID, Name: "old"}, nil)
		categories.EXPECT().UpdateCategory(ctx, mock.AnythingOfType("entities.Category")).
			Return(true, nil)

		category, err := svc.UpdateCategory(ctx, categoryID, service.CategoryInput{Name: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", category.Name)
	})

	t.Run("keeping own name is allowed", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().GetCategoryByName(ctx, "appliances").
			Return(entities.Category{ID: categoryID, Name: "appliances"}, nil)
		categories.EXPECT().GetCategoryByID(ctx, categoryID).
			Return(entities.Category{ID: categoryID, Name: "appliances"}, nil)
		categories.EXPECT().UpdateCategory(ctx, mock.AnythingOfType("entities.Category")).
			Return(true, nil)

		_, err := svc.UpdateCategory(ctx, categoryID, service.CategoryInput{Name: "appliances"})
		require.NoError(t, err)
	})

	t.Run("name taken by another category", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().GetCategoryByName(ctx, "appliances").
			Return(entities.Category{ID: uuid.New(), Name: "appliances"}, nil)

		_, err := svc.UpdateCategory(ctx, categoryID, service.CategoryInput{Name: "appliances"})
		require.ErrorIs(t, err, entities.ErrCategoryNameTaken)
	})

	t.Run("own parent rejected", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		_, err := svc.UpdateCategory(ctx, categoryID, service.CategoryInput{Name: "x", ParentID: categoryID})
		require.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("not found", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().GetCategoryByName(ctx, "x").
			Return(entities.Category{}, entities.ErrCategoryNotFound)
		categories.EXPECT().GetCategoryByID(ctx, categoryID).
			Return(entities.Category{}, entities.ErrCategoryNotFound)
		_, err := svc.UpdateCategory(ctx, categoryID, service.CategoryInput{Name: "x"})
		require.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().DeleteCategory(ctx, categoryID).Return(true, nil)
		require.NoError(t, svc.DeleteCategory(ctx, categoryID))
	})

	t.Run("not found", func(t *testing.T) {
		products, categories := newCatalogMocks(t)
		svc := service.NewCatalogService(discardLogger(), products, categories)

		categories.EXPECT().DeleteCategory(ctx, categoryID).Return(false, nil)
		require.ErrorIs(t, svc.DeleteCategory(ctx, categoryID), entities.ErrCategoryNotFound)
	})
}
