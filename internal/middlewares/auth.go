package middlewares

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/sbilibin2017/recipe-keeper/internal/jwt"
	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the user a token was issued to.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type userContextKey struct{}

// AuthMiddleware resolves the bearer token into the current user and stores it in the
// request context. Requests without a valid token continue anonymously; RequireUser
// decides whether that is acceptable.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("rejected bearer token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to load user", "user_id", claims.UserID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				logger.Log.Infow("token refers to unknown user", "user_id", claims.UserID)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.UserDB)
	return user, ok && user != nil
}
