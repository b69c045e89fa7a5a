package services

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/recipe-keeper/internal/htmlsanitize"
	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/metrics"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

//go:generate mockgen -source=search.go -destination=search_mock.go -package=services

// RecipeSearcher queries the catalog for recipes and their summaries.
type RecipeSearcher interface {
	SearchRecipes(ctx context.Context, query string) (*models.SearchPage, error)
	GetRecipeSummary(ctx context.Context, recipeID string) (string, error)
}

// SummaryCache stores sanitized summaries between searches.
type SummaryCache interface {
	Get(ctx context.Context, recipeID string) (string, error)
	Set(ctx context.Context, recipeID, summary string) error
}

// SearchService runs a catalog search and attaches a summary to every hit.
type SearchService struct {
	searcher RecipeSearcher
	cache    SummaryCache
	timeout  time.Duration
	fanOut   int
}

// NewSearchService creates a SearchService. cache may be nil. fanOut bounds the
// number of summary requests in flight for one search.
func NewSearchService(searcher RecipeSearcher, cache SummaryCache, timeout time.Duration, fanOut int) *SearchService {
	if fanOut < 1 {
		fanOut = 1
	}
	return &SearchService{
		searcher: searcher,
		cache:    cache,
		timeout:  timeout,
		fanOut:   fanOut,
	}
}

// SearchAndEnrich searches the catalog and fetches the summary of every result concurrently.
// Results keep the catalog order. A summary that cannot be fetched is left empty and
// counted in FailedSummaries; it does not fail the search.
func (s *SearchService) SearchAndEnrich(ctx context.Context, query string) (*models.EnrichedResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	page, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]models.EnrichedRecipe, len(page.Results))
	var failed atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(s.fanOut)
	for i, hit := range page.Results {
		results[i].RecipeSummary = hit
		g.Go(func() error {
			summary, err := s.summary(ctx, hit.ID)
			if err != nil {
				failed.Add(1)
				metrics.EnrichmentFailures.Inc()
				logger.Log.Warnw("failed to fetch recipe summary", "recipe_id", hit.ID, "error", err)
				return nil
			}
			results[i].Summary = &summary
			return nil
		})
	}
	_ = g.Wait()

	return &models.EnrichedResults{
		BaseURI:         page.BaseURI,
		TotalResults:    page.TotalResults,
		Results:         results,
		FailedSummaries: int(failed.Load()),
	}, nil
}

func (s *SearchService) search(ctx context.Context, query string) (*models.SearchPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	page, err := s.searcher.SearchRecipes(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to search recipes", "query", query, "error", err)
		return nil, &DependencyError{Op: "search", Err: err}
	}
	return page, nil
}

// summary returns the sanitized summary of recipeID, from cache when possible.
func (s *SearchService) summary(ctx context.Context, recipeID string) (string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, recipeID); err == nil {
			metrics.SummaryCache.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.SummaryCache.WithLabelValues("miss").Inc()
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.searcher.GetRecipeSummary(callCtx, recipeID)
	if err != nil {
		return "", &DependencyError{Op: "summary", Err: err}
	}
	summary := htmlsanitize.Sanitize(raw)

	if s.cache != nil {
		if err := s.cache.Set(ctx, recipeID, summary); err != nil {
			logger.Log.Warnw("failed to cache recipe summary", "recipe_id", recipeID, "error", err)
		}
	}
	return summary, nil
}
