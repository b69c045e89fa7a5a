package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username, unique and case-sensitive
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,max=64"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=64"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Id of the new user
	UserID uuid.UUID `json:"user_id"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Username already exists / invalid request"
// @Failure 429 {string} string "Too many requests"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "invalid request: " + err.Error()})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusBadRequest, RegisterErrorResponse{Error: "Username already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  user.UserID,
		})
	}
}
