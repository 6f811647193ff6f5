package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"duka/internal/entities"
	"duka/pkg/utils"
)

// respondError maps service errors onto the HTTP surface. Anything not
// in the taxonomy is a 500 and gets logged with its cause.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrInvalidCredentials),
		errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)

	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)

	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrCustomerNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrCategoryNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, entities.ErrEmailTaken),
		errors.Is(err, entities.ErrPhoneTaken),
		errors.Is(err, entities.ErrCategoryNameTaken):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
