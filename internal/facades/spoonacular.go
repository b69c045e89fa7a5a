package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/metrics"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

const breakerName = "spoonacular"

// maxBodySize caps how much of an upstream response is read.
const maxBodySize = 4 << 20

// SpoonacularConfig configures the catalog client.
type SpoonacularConfig struct {
	BaseURL string
	APIKey  string
	Host    string        // x-rapidapi-host header
	Timeout time.Duration // HTTP client timeout, a backstop for callers without a deadline
	Rate    float64       // requests per second
	Burst   int
}

// SpoonacularFacade reads recipes from the Spoonacular API over RapidAPI.
type SpoonacularFacade struct {
	cfg     SpoonacularConfig
	client  *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
}

// NewSpoonacularFacade creates a catalog client with rate limiting and a circuit breaker.
func NewSpoonacularFacade(cfg SpoonacularConfig) *SpoonacularFacade {
	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// An unknown id or a caller giving up says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, models.ErrRecipeNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &SpoonacularFacade{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		cb:      cb,
	}
}

type searchResponse struct {
	Results []struct {
		ID             int64  `json:"id"`
		Title          string `json:"title"`
		Image          string `json:"image"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
	} `json:"results"`
	BaseURI      string `json:"baseUri"`
	TotalResults int    `json:"totalResults"`
}

type summaryResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type informationResponse struct {
	ID                  int64               `json:"id"`
	Title               string              `json:"title"`
	Image               string              `json:"image"`
	Instructions        string              `json:"instructions"`
	ReadyInMinutes      int                 `json:"readyInMinutes"`
	Servings            int                 `json:"servings"`
	SourceURL           string              `json:"sourceUrl"`
	ExtendedIngredients []models.Ingredient `json:"extendedIngredients"`
}

// SearchRecipes returns the catalog's ordered results for query.
func (f *SpoonacularFacade) SearchRecipes(ctx context.Context, query string) (*models.SearchPage, error) {
	var resp searchResponse
	if err := f.get(ctx, "search", "/recipes/search", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}

	page := &models.SearchPage{
		BaseURI:      resp.BaseURI,
		TotalResults: resp.TotalResults,
		Results:      make([]models.RecipeSummary, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		page.Results = append(page.Results, models.RecipeSummary{
			ID:             strconv.FormatInt(r.ID, 10),
			Title:          r.Title,
			Image:          r.Image,
			ReadyInMinutes: r.ReadyInMinutes,
			Servings:       r.Servings,
		})
	}
	return page, nil
}

// GetRecipeSummary returns the raw HTML summary of a recipe.
func (f *SpoonacularFacade) GetRecipeSummary(ctx context.Context, recipeID string) (string, error) {
	var resp summaryResponse
	path := "/recipes/" + url.PathEscape(recipeID) + "/summary"
	if err := f.get(ctx, "summary", path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

// GetRecipeDetail returns the full information of a recipe.
func (f *SpoonacularFacade) GetRecipeDetail(ctx context.Context, recipeID string) (*models.RecipeDetail, error) {
	var resp informationResponse
	path := "/recipes/" + url.PathEscape(recipeID) + "/information"
	if err := f.get(ctx, "detail", path, nil, &resp); err != nil {
		return nil, err
	}

	id := recipeID
	if resp.ID != 0 {
		id = strconv.FormatInt(resp.ID, 10)
	}
	return &models.RecipeDetail{
		ID:             id,
		Title:          resp.Title,
		Image:          resp.Image,
		Instructions:   resp.Instructions,
		ReadyInMinutes: resp.ReadyInMinutes,
		Servings:       resp.Servings,
		SourceURL:      resp.SourceURL,
		Ingredients:    resp.ExtendedIngredients,
	}, nil
}

// get performs a rate-limited, circuit-broken GET and decodes the JSON body into out.
func (f *SpoonacularFacade) get(ctx context.Context, op, path string, query url.Values, out any) error {
	start := time.Now()
	defer func() {
		metrics.UpstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := f.limiter.Wait(ctx); err != nil {
		metrics.UpstreamRequests.WithLabelValues(op, "rejected").Inc()
		return fmt.Errorf("rate limiter: %w", err)
	}

	body, err := f.cb.Execute(func() ([]byte, error) {
		return f.do(ctx, path, query)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.UpstreamRequests.WithLabelValues(op, "rejected").Inc()
		logger.Log.Warnw("catalog request rejected by circuit breaker", "operation", op, "error", err)
		return err
	case errors.Is(err, models.ErrRecipeNotFound):
		metrics.UpstreamRequests.WithLabelValues(op, "not_found").Inc()
		return err
	case err != nil:
		metrics.UpstreamRequests.WithLabelValues(op, "error").Inc()
		logger.Log.Errorw("catalog request failed", "operation", op, "path", path, "error", err)
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(op, "error").Inc()
		logger.Log.Errorw("failed to decode catalog response", "operation", op, "path", path, "error", err)
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	metrics.UpstreamRequests.WithLabelValues(op, "success").Inc()
	return nil
}

func (f *SpoonacularFacade) do(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := f.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", f.cfg.APIKey)
	req.Header.Set("x-rapidapi-host", f.cfg.Host)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.ErrRecipeNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return body, nil
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
