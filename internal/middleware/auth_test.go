package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"duka/internal/entities"
	"duka/internal/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authenticatorFunc func(ctx context.Context, token string) (entities.Principal, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (entities.Principal, error) {
	return f(ctx, token)
}

func TestAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	principal := entities.Principal{UserID: uuid.New()}

	auth := authenticatorFunc(func(ctx context.Context, token string) (entities.Principal, error) {
		if token == "valid" {
			return principal, nil
		}
		return entities.Principal{}, entities.ErrUnauthorized
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := middleware.PrincipalFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, principal, got)
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Auth(logger, auth)(next)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer valid", wantStatus: http.StatusOK},
		{name: "lowercase scheme accepted", header: "bearer valid", wantStatus: http.StatusOK},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcg==", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Admin(next)

	testCases := []struct {
		name       string
		principal  *entities.Principal
		wantStatus int
	}{
		{name: "admin passes", principal: &entities.Principal{UserID: uuid.New(), IsAdmin: true}, wantStatus: http.StatusOK},
		{name: "non-admin forbidden", principal: &entities.Principal{UserID: uuid.New()}, wantStatus: http.StatusForbidden},
		{name: "no principal forbidden", principal: nil, wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.principal != nil {
				req = req.WithContext(middleware.ContextWithPrincipal(req.Context(), *tc.principal))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
