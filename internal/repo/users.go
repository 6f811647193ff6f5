package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"duka/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{"id", "email", "username", "password_hash", "phone", "address", "is_admin", "created_at", "updated_at"}

type userRepo struct {
	store
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{store: newStore(db)}
}

func (r *userRepo) InsertUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Username, u.PasswordHash, nullString(u.Phone), nullString(u.Address), u.IsAdmin, u.CreatedAt, u.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *userRepo) GetUserByID(ctx context.Context, id uuid.UUID) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *userRepo) getUser(ctx context.Context, pred sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(pred).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *userRepo) SaveSession(ctx context.Context, s entities.Session) error {
	query, args := r.qb.Insert("sessions").
		Columns("token", "user_id", "expires_at", "created_at").
		Values(s.Token, s.UserID, s.ExpiresAt, s.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *userRepo) GetSession(ctx context.Context, token string) (entities.Session, error) {
	query, args := r.qb.Select("token", "user_id", "expires_at", "created_at").
		From("sessions").
		Where(sq.Eq{"token": token}).
		MustSql()

	var session Session
	err := r.getContext(ctx, &session, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Session{}, entities.ErrSessionNotFound
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return SessionToEntity(session), nil
}

func (r *userRepo) DeleteSession(ctx context.Context, token string) error {
	query, args := r.qb.Delete("sessions").
		Where(sq.Eq{"token": token}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions reaps sessions past their expiry. Meant for a
// periodic cleanup, not the request path.
func (r *userRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args := r.qb.Delete("sessions").
		Where(sq.Lt{"expires_at": now}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected, nil
}
