package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

//go:generate mockgen -source=recipe.go -destination=recipe_mock.go -package=handlers

// RecipeInfoGetter defines the interface for reading full recipe details.
type RecipeInfoGetter interface {
	GetRecipeInfo(ctx context.Context, recipeID string) (*models.RecipeDetail, error)
}

// NewRecipeInfoHandler returns an HTTP handler for a single recipe.
// @Summary Get recipe details
// @Description Returns the full catalog view of a recipe, including ingredients and sanitized instructions. Nothing is stored.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param recipeID path string true "Catalog recipe id"
// @Success 200 {object} models.RecipeDetail
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Failure 502 {object} handlers.ErrorResponse "Catalog unavailable"
// @Router /recipes/{recipeID} [get]
func NewRecipeInfoHandler(svc RecipeInfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.GetRecipeInfo(r.Context(), chi.URLParam(r, "recipeID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}
