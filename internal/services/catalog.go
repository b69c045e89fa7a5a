package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/recipe-keeper/internal/htmlsanitize"
	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/metrics"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

const maxInstructionsLen = 10000

// RecipeReader defines read operations for cached recipes.
type RecipeReader interface {
	GetByID(ctx context.Context, recipeID string) (*models.RecipeDB, error)
}

// RecipeWriter inserts cached recipes.
type RecipeWriter interface {
	Save(ctx context.Context, recipe *models.RecipeDB) (*models.RecipeDB, error)
}

// RecipeDetailFetcher retrieves full recipe details from the catalog.
type RecipeDetailFetcher interface {
	GetRecipeDetail(ctx context.Context, recipeID string) (*models.RecipeDetail, error)
}

// CatalogService materializes upstream recipes into the local store exactly once.
type CatalogService struct {
	reader  RecipeReader
	writer  RecipeWriter
	fetcher RecipeDetailFetcher
	timeout time.Duration
	group   singleflight.Group
}

// NewCatalogService creates a CatalogService. timeout bounds each catalog call.
func NewCatalogService(reader RecipeReader, writer RecipeWriter, fetcher RecipeDetailFetcher, timeout time.Duration) *CatalogService {
	return &CatalogService{
		reader:  reader,
		writer:  writer,
		fetcher: fetcher,
		timeout: timeout,
	}
}

// EnsureRecipe returns the stored recipe for recipeID, fetching and storing it first
// when it is not cached yet.
//
// Concurrent calls for the same id in this process share one lookup. A caller whose ctx
// ends stops waiting, but the shared lookup keeps running for the others. Across processes
// the unique key on recipes decides the winner and the loser re-reads the stored row.
func (s *CatalogService) EnsureRecipe(ctx context.Context, recipeID string) (*models.RecipeDB, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, ErrInvalidRecipeID
	}

	ch := s.group.DoChan(recipeID, func() (any, error) {
		return s.ensure(context.WithoutCancel(ctx), recipeID)
	})
	select {
	case <-ctx.Done():
		return nil, &DependencyError{Op: "recipe detail", Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.RecipeDB), nil
	}
}

func (s *CatalogService) ensure(ctx context.Context, recipeID string) (*models.RecipeDB, error) {
	recipe, err := s.reader.GetByID(ctx, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to look up recipe", "recipe_id", recipeID, "error", err)
		return nil, &StorageError{Op: "get recipe", Err: err}
	}
	if recipe != nil {
		metrics.CatalogLookups.WithLabelValues("hit").Inc()
		return recipe, nil
	}

	detail, err := s.fetchDetail(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(detail.Title) == "" {
		logger.Log.Errorw("catalog returned recipe without title", "recipe_id", recipeID)
		return nil, ErrIncompleteRecipe
	}

	recipe, err = s.writer.Save(ctx, &models.RecipeDB{
		RecipeID:     recipeID,
		Name:         detail.Title,
		ImageURL:     detail.Image,
		Instructions: truncate(htmlsanitize.Sanitize(detail.Instructions), maxInstructionsLen),
	})
	if errors.Is(err, models.ErrAlreadyExists) {
		recipe, err = s.reader.GetByID(ctx, recipeID)
		if err == nil && recipe == nil {
			err = errors.New("recipe vanished after unique violation")
		}
		if err != nil {
			logger.Log.Errorw("failed to re-read recipe", "recipe_id", recipeID, "error", err)
			return nil, &StorageError{Op: "get recipe", Err: err}
		}
		metrics.CatalogLookups.WithLabelValues("race").Inc()
		return recipe, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to save recipe", "recipe_id", recipeID, "error", err)
		return nil, &StorageError{Op: "save recipe", Err: err}
	}

	metrics.CatalogLookups.WithLabelValues("miss").Inc()
	logger.Log.Infow("recipe cached", "recipe_id", recipeID)
	return recipe, nil
}

// GetRecipeInfo returns the full catalog view of a recipe without storing anything.
func (s *CatalogService) GetRecipeInfo(ctx context.Context, recipeID string) (*models.RecipeDetail, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, ErrInvalidRecipeID
	}

	detail, err := s.fetchDetail(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	detail.Instructions = htmlsanitize.Sanitize(detail.Instructions)
	return detail, nil
}

func (s *CatalogService) fetchDetail(ctx context.Context, recipeID string) (*models.RecipeDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	detail, err := s.fetcher.GetRecipeDetail(ctx, recipeID)
	if errors.Is(err, models.ErrRecipeNotFound) {
		logger.Log.Infow("recipe not found in catalog", "recipe_id", recipeID)
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to fetch recipe detail", "recipe_id", recipeID, "error", err)
		return nil, &DependencyError{Op: "recipe detail", Err: err}
	}
	return detail, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
