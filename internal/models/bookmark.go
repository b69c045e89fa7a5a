package models

import (
	"time"

	"github.com/google/uuid"
)

// BookmarkDB represents a user-recipe association row.
// The pair (UserID, RecipeID) is unique.
type BookmarkDB struct {
	BookmarkID uuid.UUID `json:"bookmark_id" db:"bookmark_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	RecipeID   string    `json:"recipe_id" db:"recipe_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// BookmarkedRecipe is a bookmark joined with its recipe.
type BookmarkedRecipe struct {
	BookmarkID   uuid.UUID `json:"bookmark_id" db:"bookmark_id"`
	RecipeID     string    `json:"recipe_id" db:"recipe_id"`
	Name         string    `json:"recipe_name" db:"recipe_name"`
	ImageURL     string    `json:"img_url" db:"img_url"`
	Instructions string    `json:"instructions" db:"instructions"`
	BookmarkedAt time.Time `json:"bookmarked_at" db:"bookmarked_at"`
}

// BookmarkEvent is published to Kafka when a bookmark is created.
type BookmarkEvent struct {
	EventID    string `json:"event_id"`
	Timestamp  int64  `json:"timestamp"` // Unix seconds
	UserID     string `json:"user_id"`
	RecipeID   string `json:"recipe_id"`
	BookmarkID string `json:"bookmark_id"`
}
