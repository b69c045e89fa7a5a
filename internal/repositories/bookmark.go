package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

// BookmarkReadRepository reads the user-recipe bookmark relation.
type BookmarkReadRepository struct {
	db *sqlx.DB
}

func NewBookmarkReadRepository(db *sqlx.DB) *BookmarkReadRepository {
	return &BookmarkReadRepository{db: db}
}

// Get returns the bookmark of userID on recipeID, or nil when there is none.
func (r *BookmarkReadRepository) Get(ctx context.Context, userID uuid.UUID, recipeID string) (*models.BookmarkDB, error) {
	const query = `
		SELECT bookmark_id, user_id, recipe_id, created_at
		FROM bookmarks
		WHERE user_id = $1 AND recipe_id = $2
	`

	var bookmark models.BookmarkDB
	err := r.db.GetContext(ctx, &bookmark, query, userID, recipeID)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{userID, recipeID},
		"result", bookmark.BookmarkID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// ListByUserID returns the user's bookmarked recipes, oldest bookmark first.
func (r *BookmarkReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BookmarkedRecipe, error) {
	const query = `
		SELECT b.bookmark_id, r.recipe_id, r.recipe_name, r.img_url, r.instructions, b.created_at AS bookmarked_at
		FROM bookmarks b
		JOIN recipes r ON r.recipe_id = b.recipe_id
		WHERE b.user_id = $1
		ORDER BY b.created_at, b.bookmark_id
	`

	recipes := []models.BookmarkedRecipe{}
	err := r.db.SelectContext(ctx, &recipes, query, userID)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(recipes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// BookmarkWriteRepository inserts bookmarks.
type BookmarkWriteRepository struct {
	db *sqlx.DB
}

func NewBookmarkWriteRepository(db *sqlx.DB) *BookmarkWriteRepository {
	return &BookmarkWriteRepository{db: db}
}

// Save inserts a bookmark. A duplicate (user, recipe) pair yields models.ErrAlreadyExists.
func (r *BookmarkWriteRepository) Save(ctx context.Context, bookmarkID, userID uuid.UUID, recipeID string) error {
	const query = `
		INSERT INTO bookmarks (bookmark_id, user_id, recipe_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{bookmarkID, userID, recipeID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return mapUniqueViolation(err)
}
