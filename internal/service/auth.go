package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"duka/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	InsertUser(ctx context.Context, u entities.User) error
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (entities.User, error)
	SaveSession(ctx context.Context, s entities.Session) error
	GetSession(ctx context.Context, token string) (entities.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type CustomerLookup interface {
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (entities.Customer, error)
	InsertCustomer(ctx context.Context, c entities.Customer) error
}

type SignupInput struct {
	Email    string
	Username string
	Password string
	Phone    string
	Address  string
}

type authService struct {
	logger     *slog.Logger
	users      UserRepo
	customers  CustomerLookup
	sessionTTL time.Duration
}

func NewAuthService(logger *slog.Logger, users UserRepo, customers CustomerLookup, sessionTTL time.Duration) *authService {
	return &authService{
		logger:     logger.With(slog.String("service", "auth")),
		users:      users,
		customers:  customers,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (entities.User, error) {
	_, err := s.users.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return entities.User{}, entities.ErrEmailTaken
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return entities.User{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// username defaults to the email when omitted
	username := in.Username
	if username == "" {
		username = in.Email
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.New(),
		Email:        in.Email,
		Username:     username,
		PasswordHash: hash,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.InsertUser(ctx, user); err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	// a phone number makes the user a customer right away
	if in.Phone != "" {
		customer := entities.Customer{
			ID:          uuid.New(),
			UserID:      user.ID,
			PhoneNumber: in.Phone,
			Address:     in.Address,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.customers.InsertCustomer(ctx, customer); err != nil {
			return entities.User{}, fmt.Errorf("failed to create customer profile: %w", err)
		}
	}

	s.logger.DebugContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials and issues an opaque bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		return "", time.Time{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", time.Time{}, entities.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	session := entities.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.users.SaveSession(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to save session: %w", err)
	}

	return token, session.ExpiresAt, nil
}

// Authenticate resolves a bearer token into a Principal. Expired
// sessions are purged on sight.
func (s *authService) Authenticate(ctx context.Context, token string) (entities.Principal, error) {
	session, err := s.users.GetSession(ctx, token)
	if errors.Is(err, entities.ErrSessionNotFound) {
		return entities.Principal{}, entities.ErrUnauthorized
	}
	if err != nil {
		return entities.Principal{}, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.users.DeleteSession(ctx, token); err != nil {
			s.logger.Warn("failed to delete expired session", slog.Any("error", err))
		}
		return entities.Principal{}, entities.ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Principal{}, entities.ErrUnauthorized
	}
	if err != nil {
		return entities.Principal{}, fmt.Errorf("failed to get user: %w", err)
	}

	principal := entities.Principal{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}

	customer, err := s.customers.GetCustomerByUserID(ctx, user.ID)
	switch {
	case err == nil:
		principal.CustomerID = customer.ID
	case errors.Is(err, entities.ErrCustomerNotFound):
		// user has no customer profile yet
	default:
		return entities.Principal{}, fmt.Errorf("failed to get customer profile: %w", err)
	}

	return principal, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.users.DeleteSession(ctx, token)
}

const tokenBytes = 32

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
