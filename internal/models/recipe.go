package models

import "time"

// RecipeDB is a locally cached upstream recipe.
// RecipeID is the upstream catalog identifier and the dedup key.
type RecipeDB struct {
	RecipeID     string    `json:"recipe_id" db:"recipe_id"`
	Name         string    `json:"recipe_name" db:"recipe_name"`
	ImageURL     string    `json:"img_url" db:"img_url"`
	Instructions string    `json:"instructions" db:"instructions"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Ingredient is one line of an upstream recipe's ingredient list.
type Ingredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// RecipeDetail is the full upstream view of a recipe.
type RecipeDetail struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Image          string       `json:"image"`
	Instructions   string       `json:"instructions"`
	ReadyInMinutes int          `json:"readyInMinutes"`
	Servings       int          `json:"servings"`
	SourceURL      string       `json:"sourceUrl"`
	Ingredients    []Ingredient `json:"ingredients"`
}
