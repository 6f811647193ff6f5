package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"duka/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var productColumns = []string{"id", "name", "description", "price", "stock", "is_active", "created_at", "updated_at"}

type productRepo struct {
	store
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{store: newStore(db)}
}

func (r *productRepo) InsertProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(p.ID, p.Name, nullString(p.Description), p.Price, p.Stock, p.IsActive, p.CreatedAt, p.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return r.replaceCategories(ctx, p.ID, p.CategoryIDs)
}

func (r *productRepo) UpdateProduct(ctx context.Context, p entities.Product) (bool, error) {
	query, args := r.qb.Update("products").
		Set("name", p.Name).
		Set("description", nullString(p.Description)).
		Set("price", p.Price).
		Set("stock", p.Stock).
		Set("is_active", p.IsActive).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := r.replaceCategories(ctx, p.ID, p.CategoryIDs); err != nil {
		return false, err
	}
	return true, nil
}

func (r *productRepo) replaceCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	query, args := r.qb.Delete("product_categories").
		Where(sq.Eq{"product_id": productID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear product categories: %w", err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	q := r.qb.Insert("product_categories").Columns("product_id", "category_id")
	for _, id := range categoryIDs {
		q = q.Values(productID, id)
	}
	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product categories: %w", err)
	}
	return nil
}

func (r *productRepo) GetProductByID(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	categoryIDs, err := r.categoriesOf(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	return ProductToEntity(product, categoryIDs), nil
}

func (r *productRepo) categoriesOf(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	query, args := r.qb.Select("category_id").
		From("product_categories").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var ids []uuid.UUID
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product categories: %w", err)
	}
	return ids, nil
}

// productOrderColumns maps filter ordering keys to columns. Anything
// else falls back to name.
var productOrderColumns = map[string]string{
	"name":       "p.name",
	"price":      "p.price",
	"created_at": "p.created_at",
}

func productOrderBy(key string) string {
	dir := "ASC"
	if strings.HasPrefix(key, "-") {
		dir = "DESC"
		key = key[1:]
	}
	col, ok := productOrderColumns[key]
	if !ok {
		col = "p.name"
	}
	return col + " " + dir
}

// ListProducts returns products matching the filter. Search matches
// name or description case-insensitively.
func (r *productRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	q := r.qb.Select(
		"p.id", "p.name", "p.description", "p.price",
		"p.stock", "p.is_active", "p.created_at", "p.updated_at").
		From("products p").
		OrderBy(productOrderBy(f.OrderBy)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if f.CategoryID != uuid.Nil {
		q = q.Join("product_categories pc ON pc.product_id = p.id").
			Where(sq.Eq{"pc.category_id": f.CategoryID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.description": pattern},
		})
	}

	query, args := q.MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	if len(products) == 0 {
		return []entities.Product{}, nil
	}

	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	query, args = r.qb.Select("product_id", "category_id").
		From("product_categories").
		Where(sq.Eq{"product_id": ids}).
		MustSql()

	var links []ProductCategory
	if err := r.selectContext(ctx, &links, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product categories: %w", err)
	}
	linkMap := make(map[uuid.UUID][]uuid.UUID, len(ids))
	for _, l := range links {
		linkMap[l.ProductID] = append(linkMap[l.ProductID], l.CategoryID)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p, linkMap[p.ID]))
	}
	return result, nil
}

// AveragePrice computes the mean price of a category's active
// products. Zero when the category has none.
func (r *productRepo) AveragePrice(ctx context.Context, categoryID uuid.UUID) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(AVG(p.price), 0)").
		From("products p").
		Join("product_categories pc ON pc.product_id = p.id").
		Where(sq.Eq{"pc.category_id": categoryID, "p.is_active": true}).
		MustSql()

	var avg decimal.Decimal
	if err := r.getContext(ctx, &avg, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to average prices: %w", err)
	}
	return avg, nil
}

// DecrementStock atomically takes qty units off the shelf. Returns
// false when the product is missing or stock would go negative.
func (r *productRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *productRepo) SetStock(ctx context.Context, id uuid.UUID, stock int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("stock", stock).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to set stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *productRepo) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
