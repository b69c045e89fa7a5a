package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

//go:generate mockgen -source=search.go -destination=search_mock.go -package=handlers

// Searcher defines the interface for the search enrichment service.
type Searcher interface {
	SearchAndEnrich(ctx context.Context, query string) (*models.EnrichedResults, error)
}

// NewSearchHandler returns an HTTP handler that searches the catalog and attaches summaries.
// @Summary Search recipes
// @Description Searches the recipe catalog and attaches a descriptive summary to every result. Results keep catalog order; a result whose summary could not be fetched has no summary field.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param recipe_search query string true "Search text"
// @Success 200 {object} models.EnrichedResults
// @Failure 400 {object} handlers.ErrorResponse "Empty query"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Catalog unavailable"
// @Router /search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.SearchAndEnrich(r.Context(), r.URL.Query().Get("recipe_search"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}
