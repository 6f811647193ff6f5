package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"duka/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var categoryColumns = []string{"id", "name", "description", "parent_id", "is_active", "created_at", "updated_at"}

type categoryRepo struct {
	store
}

func NewCategoryRepo(db *sqlx.DB) *categoryRepo {
	return &categoryRepo{store: newStore(db)}
}

func (r *categoryRepo) InsertCategory(ctx context.Context, c entities.Category) error {
	query, args := r.qb.Insert("categories").
		Columns(categoryColumns...).
		Values(c.ID, c.Name, nullString(c.Description), nullUUID(c.ParentID), c.IsActive, c.CreatedAt, c.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *categoryRepo) UpdateCategory(ctx context.Context, c entities.Category) (bool, error) {
	query, args := r.qb.Update("categories").
		Set("name", c.Name).
		Set("description", nullString(c.Description)).
		Set("parent_id", nullUUID(c.ParentID)).
		Set("is_active", c.IsActive).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *categoryRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	var category Category
	err := r.getContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return CategoryToEntity(category), nil
}

func (r *categoryRepo) GetCategoryByName(ctx context.Context, name string) (entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"name": name}).
		MustSql()

	var category Category
	err := r.getContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return CategoryToEntity(category), nil
}

func (r *categoryRepo) ListCategories(ctx context.Context, limit, offset int) ([]entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		OrderBy("name ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var categories []Category
	if err := r.selectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	result := make([]entities.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryToEntity(c))
	}
	return result, nil
}

func (r *categoryRepo) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args := r.qb.Select("1").
		From("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return true, nil
}

func (r *categoryRepo) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args := r.qb.Delete("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	if id == uuid.Nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}
