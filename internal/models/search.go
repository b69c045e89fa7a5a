package models

// RecipeSummary is one upstream search hit. It carries no instructions.
type RecipeSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
}

// SearchPage is the ordered result of an upstream search.
type SearchPage struct {
	BaseURI      string          `json:"baseUri"`
	TotalResults int             `json:"totalResults"`
	Results      []RecipeSummary `json:"results"`
}

// EnrichedRecipe is a search hit with its descriptive summary attached.
// Summary is nil when the summary could not be fetched.
type EnrichedRecipe struct {
	RecipeSummary
	Summary *string `json:"summary,omitempty"`
}

// EnrichedResults is a search page after summary fan-out, in upstream order.
type EnrichedResults struct {
	BaseURI         string           `json:"baseUri"`
	TotalResults    int              `json:"totalResults"`
	Results         []EnrichedRecipe `json:"results"`
	FailedSummaries int              `json:"failedSummaries"`
}
