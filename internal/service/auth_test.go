package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"duka/internal/entities"
	"duka/internal/service"
	mocks "duka/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = time.Hour

func TestAuthService_Signup(t *testing.T) {
	testCases := []struct {
		name         string
		input        service.SignupInput
		mockBehavior func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup)
		wantErr      error
	}{
		{
			name:  "success",
			input: service.SignupInput{Email: "jane@example.com", Password: "s3cretpass"},
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetUserByEmail(mock.Anything, "jane@example.com").
					Return(entities.User{}, entities.ErrUserNotFound).Once()
				users.EXPECT().
					InsertUser(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, u entities.User) {
						// username falls back to email, password is hashed
						assert.Equal(t, "jane@example.com", u.Username)
						assert.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("s3cretpass")))
					}).
					Return(nil).Once()
			},
		},
		{
			name:  "phone creates a customer profile",
			input: service.SignupInput{Email: "jane@example.com", Password: "s3cretpass", Phone: "+254700000001"},
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetUserByEmail(mock.Anything, "jane@example.com").
					Return(entities.User{}, entities.ErrUserNotFound).Once()
				users.EXPECT().InsertUser(mock.Anything, mock.Anything).Return(nil).Once()
				customers.EXPECT().
					InsertCustomer(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, c entities.Customer) {
						assert.Equal(t, "+254700000001", c.PhoneNumber)
						assert.True(t, c.IsActive)
					}).
					Return(nil).Once()
			},
		},
		{
			name:  "email already registered",
			input: service.SignupInput{Email: "jane@example.com", Password: "s3cretpass"},
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetUserByEmail(mock.Anything, "jane@example.com").
					Return(entities.User{Email: "jane@example.com"}, nil).Once()
			},
			wantErr: entities.ErrEmailTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserRepo(t)
			customers := mocks.NewMockCustomerLookup(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(users, customers)

			svc := service.NewAuthService(logger, users, customers, sessionTTL)

			_, err := svc.Signup(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := entities.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: hash}

	testCases := []struct {
		name         string
		email        string
		password     string
		mockBehavior func(users *mocks.MockUserRepo)
		wantErr      error
	}{
		{
			name:     "success issues a session",
			email:    "jane@example.com",
			password: "s3cretpass",
			mockBehavior: func(users *mocks.MockUserRepo) {
				users.EXPECT().
					GetUserByEmail(mock.Anything, "jane@example.com").
					Return(user, nil).Once()
				users.EXPECT().
					SaveSession(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, s entities.Session) {
						assert.Equal(t, user.ID, s.UserID)
						assert.NotEmpty(t, s.Token)
						assert.True(t, s.ExpiresAt.After(time.Now()))
					}).
					Return(nil).Once()
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "s3cretpass",
			mockBehavior: func(users *mocks.MockUserRepo) {
				users.EXPECT().
					GetUserByEmail(mock.Anything, "ghost@example.com").
					Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jane@example.com",
			password: "wrongpass",
			mockBehavior: func(users *mocks.MockUserRepo) {
				users.EXPECT().
					GetUserByEmail(mock.Anything, "jane@example.com").
					Return(user, nil).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserRepo(t)
			customers := mocks.NewMockCustomerLookup(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(users)

			svc := service.NewAuthService(logger, users, customers, sessionTTL)

			token, expiresAt, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.True(t, expiresAt.After(time.Now()))
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()
	customerID := uuid.New()
	now := time.Now().UTC()

	testCases := []struct {
		name         string
		token        string
		mockBehavior func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup)
		wantErr      error
		want         entities.Principal
	}{
		{
			name:  "success with customer profile",
			token: "tok",
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetSession(mock.Anything, "tok").
					Return(entities.Session{Token: "tok", UserID: userID, ExpiresAt: now.Add(time.Hour)}, nil).Once()
				users.EXPECT().
					GetUserByID(mock.Anything, userID).
					Return(entities.User{ID: userID, IsAdmin: true}, nil).Once()
				customers.EXPECT().
					GetCustomerByUserID(mock.Anything, userID).
					Return(entities.Customer{ID: customerID, UserID: userID}, nil).Once()
			},
			want: entities.Principal{UserID: userID, CustomerID: customerID, IsAdmin: true},
		},
		{
			name:  "success without customer profile",
			token: "tok",
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetSession(mock.Anything, "tok").
					Return(entities.Session{Token: "tok", UserID: userID, ExpiresAt: now.Add(time.Hour)}, nil).Once()
				users.EXPECT().
					GetUserByID(mock.Anything, userID).
					Return(entities.User{ID: userID}, nil).Once()
				customers.EXPECT().
					GetCustomerByUserID(mock.Anything, userID).
					Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()
			},
			want: entities.Principal{UserID: userID},
		},
		{
			name:  "unknown token",
			token: "ghost",
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetSession(mock.Anything, "ghost").
					Return(entities.Session{}, entities.ErrSessionNotFound).Once()
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:  "expired session is purged",
			token: "old",
			mockBehavior: func(users *mocks.MockUserRepo, customers *mocks.MockCustomerLookup) {
				users.EXPECT().
					GetSession(mock.Anything, "old").
					Return(entities.Session{Token: "old", UserID: userID, ExpiresAt: now.Add(-time.Minute)}, nil).Once()
				users.EXPECT().DeleteSession(mock.Anything, "old").Return(nil).Once()
			},
			wantErr: entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserRepo(t)
			customers := mocks.NewMockCustomerLookup(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(users, customers)

			svc := service.NewAuthService(logger, users, customers, sessionTTL)

			got, err := svc.Authenticate(context.Background(), tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
