package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

// RecipeReadRepository reads cached recipes.
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// GetByID returns the recipe stored under the upstream id, or nil when it is not cached.
func (r *RecipeReadRepository) GetByID(ctx context.Context, recipeID string) (*models.RecipeDB, error) {
	const query = `
		SELECT recipe_id, recipe_name, img_url, instructions, created_at
		FROM recipes
		WHERE recipe_id = $1
	`

	var recipe models.RecipeDB
	err := r.db.GetContext(ctx, &recipe, query, recipeID)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{recipeID},
		"result", recipe.Name,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// RecipeWriteRepository stores recipes fetched from the catalog.
type RecipeWriteRepository struct {
	db *sqlx.DB
}

func NewRecipeWriteRepository(db *sqlx.DB) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db}
}

// Save inserts recipe. Rows are never updated; a second insert of the same id
// yields models.ErrAlreadyExists.
func (r *RecipeWriteRepository) Save(ctx context.Context, recipe *models.RecipeDB) (*models.RecipeDB, error) {
	const query = `
		INSERT INTO recipes (recipe_id, recipe_name, img_url, instructions, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING recipe_id, recipe_name, img_url, instructions, created_at
	`
	args := []any{recipe.RecipeID, recipe.Name, recipe.ImageURL, recipe.Instructions}

	var saved models.RecipeDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", args[:2],
		"result", saved.RecipeID,
		"error", err,
	)

	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &saved, nil
}
