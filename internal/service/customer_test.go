package service_test

import (
	"context"
	"testing"

	"duka/internal/entities"
	"duka/internal/service"
	"duka/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerMocks(t *testing.T) (*mocks.MockCustomerRepo, *mocks.MockUserChecker) {
	return mocks.NewMockCustomerRepo(t), mocks.NewMockUserChecker(t)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	input := service.CustomerInput{
		UserID:      userID,
		PhoneNumber: "+254700000001",
		Address:     "Nairobi",
		IsActive:    true,
	}

	t.Run("success", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		users.EXPECT().GetUserByID(ctx, userID).Return(entities.User{ID: userID}, nil)
		repo.EXPECT().GetCustomerByUserID(ctx, userID).
			Return(entities.Customer{}, entities.ErrCustomerNotFound)
		repo.EXPECT().GetCustomerByPhone(ctx, input.PhoneNumber).
			Return(entities.Customer{}, entities.ErrCustomerNotFound)
		repo.EXPECT().InsertCustomer(ctx, mock.AnythingOfType("entities.Customer")).
			Run(func(_ context.Context, c entities.Customer) {
				assert.Equal(t, userID, c.UserID)
				assert.Equal(t, "+254700000001", c.PhoneNumber)
				assert.NotEqual(t, uuid.Nil, c.ID)
			}).Return(nil)

		customer, err := svc.CreateCustomer(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "Nairobi", customer.Address)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		users.EXPECT().GetUserByID(ctx, userID).
			Return(entities.User{}, entities.ErrUserNotFound)

		_, err := svc.CreateCustomer(ctx, input)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("user already has a profile", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		users.EXPECT().GetUserByID(ctx, userID).Return(entities.User{ID: userID}, nil)
		repo.EXPECT().GetCustomerByUserID(ctx, userID).
			Return(entities.Customer{ID: uuid.New(), UserID: userID}, nil)

		_, err := svc.CreateCustomer(ctx, input)
		require.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("phone taken", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		users.EXPECT().GetUserByID(ctx, userID).Return(entities.User{ID: userID}, nil)
		repo.EXPECT().GetCustomerByUserID(ctx, userID).
			Return(entities.Customer{}, entities.ErrCustomerNotFound)
		repo.EXPECT().GetCustomerByPhone(ctx, input.PhoneNumber).
			Return(entities.Customer{ID: uuid.New()}, nil)

		_, err := svc.CreateCustomer(ctx, input)
		require.ErrorIs(t, err, entities.ErrPhoneTaken)
	})
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	input := service.CustomerInput{
		PhoneNumber: "+254700000002",
		Address:     "Mombasa",
		IsActive:    true,
	}

	t.Run("success", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		repo.EXPECT().GetCustomerByID(ctx, customerID).
			Return(entities.Customer{ID: customerID, Address: "Nairobi"}, nil)
		repo.EXPECT().GetCustomerByPhone(ctx, input.PhoneNumber).
			Return(entities.Customer{}, entities.ErrCustomerNotFound)
		repo.EXPECT().UpdateCustomer(ctx, mock.AnythingOfType("entities.Customer")).
			Run(func(_ context.Context, c entities.Customer) {
				assert.Equal(t, customerID, c.ID)
				assert.Equal(t, "Mombasa", c.Address)
			}).Return(true, nil)

		customer, err := svc.UpdateCustomer(ctx, customerID, input)
		require.NoError(t, err)
		assert.Equal(t, "+254700000002", customer.PhoneNumber)
	})

	t.Run("keeping own phone is allowed", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		repo.EXPECT().GetCustomerByID(ctx, customerID).
			Return(entities.Customer{ID: customerID, PhoneNumber: input.PhoneNumber}, nil)
		repo.EXPECT().GetCustomerByPhone(ctx, input.PhoneNumber).
			Return(entities.Customer{ID: customerID, PhoneNumber: input.PhoneNumber}, nil)
		repo.EXPECT().UpdateCustomer(ctx, mock.AnythingOfType("entities.Customer")).
			Return(true, nil)

		_, err := svc.UpdateCustomer(ctx, customerID, input)
		require.NoError(t, err)
	})

	t.Run("phone taken by another customer", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		repo.EXPECT().GetCustomerByID(ctx, customerID).
			Return(entities.Customer{ID: customerID}, nil)
		repo.EXPECT().GetCustomerByPhone(ctx, input.PhoneNumber).
			Return(entities.Customer{ID: uuid.New()}, nil)

		_, err := svc.UpdateCustomer(ctx, customerID, input)
		require.ErrorIs(t, err, entities.ErrPhoneTaken)
	})

	t.Run("not found", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		repo.EXPECT().GetCustomerByID(ctx, customerID).
			Return(entities.Customer{}, entities.ErrCustomerNotFound)

		_, err := svc.UpdateCustomer(ctx, customerID, input)
		require.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		repo.EXPECT().DeleteCustomer(ctx, customerID).Return(true, nil)
		require.NoError(t, svc.DeleteCustomer(ctx, customerID))
	})

	t.Run("not found", func(t *testing.T) {
		repo, users := newCustomerMocks(t)
		svc := service.NewCustomerService(discardLogger(), repo, users)

		repo.EXPECT().DeleteCustomer(ctx, customerID).Return(false, nil)
		require.ErrorIs(t, svc.DeleteCustomer(ctx, customerID), entities.ErrCustomerNotFound)
	})
}
