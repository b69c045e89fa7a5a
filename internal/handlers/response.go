package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

var validate = validator.New()

// ErrorResponse is the body of every failed recipe or bookmark request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: could not retrieve recipe
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps the service error taxonomy to a status code.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		depErr   *services.DependencyError
		storeErr *services.StorageError
	)

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, services.ErrInvalidRecipeID), errors.Is(err, services.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "recipe not found")
	case errors.Is(err, services.ErrIncompleteRecipe), errors.As(err, &depErr):
		writeError(w, http.StatusBadGateway, "could not retrieve recipe")
	case errors.As(err, &storeErr):
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
