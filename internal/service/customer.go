package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"duka/internal/entities"

	"github.com/google/uuid"
)

type CustomerRepo interface {
	InsertCustomer(ctx context.Context, c entities.Customer) error
	UpdateCustomer(ctx context.Context, c entities.Customer) (bool, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (entities.Customer, error)
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (entities.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (entities.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserChecker interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (entities.User, error)
}

type CustomerInput struct {
	UserID      uuid.UUID
	PhoneNumber string
	Address     string
	IsActive    bool
}

type customerService struct {
	logger *slog.Logger
	repo   CustomerRepo
	users  UserChecker
}

func NewCustomerService(logger *slog.Logger, repo CustomerRepo, users UserChecker) *customerService {
	return &customerService{
		logger: logger.With(slog.String("service", "customer")),
		repo:   repo,
		users:  users,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	if _, err := s.users.GetUserByID(ctx, in.UserID); err != nil {
		return entities.Customer{}, err
	}

	if _, err := s.repo.GetCustomerByUserID(ctx, in.UserID); err == nil {
		return entities.Customer{}, fmt.Errorf("%w: user already has a customer profile", entities.ErrValidation)
	} else if !errors.Is(err, entities.ErrCustomerNotFound) {
		return entities.Customer{}, fmt.Errorf("failed to check customer profile: %w", err)
	}

	if err := s.checkPhone(ctx, in.PhoneNumber, uuid.Nil); err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	customer := entities.Customer{
		ID:          uuid.New(),
		UserID:      in.UserID,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.InsertCustomer(ctx, customer); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, in CustomerInput) (entities.Customer, error) {
	existing, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	if err := s.checkPhone(ctx, in.PhoneNumber, id); err != nil {
		return entities.Customer{}, err
	}

	existing.PhoneNumber = in.PhoneNumber
	existing.Address = in.Address
	existing.IsActive = in.IsActive
	existing.UpdatedAt = time.Now().UTC()

	ok, err := s.repo.UpdateCustomer(ctx, existing)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	if !ok {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	return existing, nil
}

func (s *customerService) checkPhone(ctx context.Context, phone string, selfID uuid.UUID) error {
	other, err := s.repo.GetCustomerByPhone(ctx, phone)
	if errors.Is(err, entities.ErrCustomerNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check phone number: %w", err)
	}
	if other.ID != selfID {
		return entities.ErrPhoneTaken
	}
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (entities.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, limit, offset int) ([]entities.Customer, error) {
	return s.repo.ListCustomers(ctx, limit, offset)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if !ok {
		return entities.ErrCustomerNotFound
	}
	return nil
}
