package handlers

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/sbilibin2017/recipe-keeper/internal/middlewares"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

//go:generate mockgen -source=bookmark.go -destination=bookmark_mock.go -package=handlers

// Bookmarker defines the interface for the bookmark ledger.
type Bookmarker interface {
	AddBookmark(ctx context.Context, userID uuid.UUID, recipeID string) (services.BookmarkOutcome, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedRecipe, error)
	BookmarkImages(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// AddBookmarkRequest represents the JSON body for bookmarking a recipe
// swagger:model AddBookmarkRequest
type AddBookmarkRequest struct {
	// Catalog recipe id
	// required: true
	// default: 262682
	RecipeID string `json:"recipe_id" validate:"required,max=64"`
}

// AddBookmarkResponse reports whether the bookmark was new
// swagger:model AddBookmarkResponse
type AddBookmarkResponse struct {
	// Catalog recipe id
	RecipeID string `json:"recipe_id"`

	// created or already_exists
	Status string `json:"status"`
}

// BookmarksResponse is the profile view of a user's bookmarks
// swagger:model BookmarksResponse
type BookmarksResponse struct {
	Username string                    `json:"username"`
	Email    string                    `json:"email"`
	Recipes  []models.BookmarkedRecipe `json:"recipes"`
}

// BookmarkImagesResponse lists the images of bookmarked recipes
// swagger:model BookmarkImagesResponse
type BookmarkImagesResponse struct {
	Images []string `json:"images"`
}

// NewAddBookmarkHandler returns an HTTP handler that bookmarks a recipe for the current user.
// @Summary Bookmark a recipe
// @Description Stores the recipe locally on first use and links it to the current user. Repeating the call is a no-op.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addBookmarkRequest body handlers.AddBookmarkRequest true "Recipe to bookmark"
// @Success 201 {object} handlers.AddBookmarkResponse "Bookmark created"
// @Success 200 {object} handlers.AddBookmarkResponse "Bookmark already exists"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Failure 502 {object} handlers.ErrorResponse "Catalog unavailable"
// @Router /bookmarks [post]
func NewAddBookmarkHandler(svc Bookmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.CurrentUser(r.Context())
		if !ok {
			writeServiceError(w, services.ErrUnauthenticated)
			return
		}

		var req AddBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		outcome, err := svc.AddBookmark(r.Context(), user.UserID, req.RecipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		status := http.StatusOK
		if outcome == services.BookmarkCreated {
			status = http.StatusCreated
		}
		writeJSON(w, status, AddBookmarkResponse{
			RecipeID: req.RecipeID,
			Status:   outcome.String(),
		})
	}
}

// NewListBookmarksHandler returns an HTTP handler for the current user's bookmarks.
// @Summary List bookmarks
// @Description Returns the current user's profile with every bookmarked recipe, oldest first.
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BookmarksResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /bookmarks [get]
func NewListBookmarksHandler(svc Bookmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.CurrentUser(r.Context())
		if !ok {
			writeServiceError(w, services.ErrUnauthenticated)
			return
		}

		recipes, err := svc.ListBookmarks(r.Context(), user.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookmarksResponse{
			Username: user.Username,
			Email:    user.Email,
			Recipes:  recipes,
		})
	}
}

// NewBookmarkImagesHandler returns an HTTP handler for the images of bookmarked recipes.
// @Summary Bookmarked recipe images
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BookmarkImagesResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /bookmarks/images [get]
func NewBookmarkImagesHandler(svc Bookmarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.CurrentUser(r.Context())
		if !ok {
			writeServiceError(w, services.ErrUnauthenticated)
			return
		}

		images, err := svc.BookmarkImages(r.Context(), user.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if images == nil {
			images = []string{}
		}
		writeJSON(w, http.StatusOK, BookmarkImagesResponse{Images: images})
	}
}
