package handler

import (
	"context"
	"net/http"
	"time"

	"duka/internal/entities"
	"duka/internal/middleware"
	"duka/internal/service"
	"duka/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"
)

type AuthService interface {
	Signup(ctx context.Context, in service.SignupInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
	auth     func(http.Handler) http.Handler
}

func NewAuthHandler(logger *slog.Logger, svc AuthService, auth func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/test-token", h.TestToken)
			r.Post("/logout", h.Logout)
		})
	})
}

// Signup registers a new user with an optional customer profile.
// @Summary      Sign up
// @Tags         auth
// @Param        body  body  SignupRequest  true  "credentials"
// @Success      201  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "email already registered"
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.svc.Signup(r.Context(), service.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// Login exchanges credentials for a bearer token.
// @Summary      Log in
// @Tags         auth
// @Param        body  body  LoginRequest  true  "credentials"
// @Success      200  {object}  LoginResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, expiresAt, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

// TestToken echoes the authenticated principal.
// @Summary      Validate token
// @Tags         auth
// @Security     BearerAuth
// @Success      200  {object}  Principal
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/auth/test-token [get]
func (h *AuthHandler) TestToken(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	utils.WriteJSON(w, PrincipalEntityToJSON(principal), http.StatusOK)
}

// Logout revokes the presented token.
// @Summary      Log out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.svc.Logout(r.Context(), token); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
