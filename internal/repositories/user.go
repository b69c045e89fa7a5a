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

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the exact username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

// GetByID returns the user with userID, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{arg},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken username yields models.ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id, username, email, password_hash, created_at, updated_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, email, passwordHash)

	logger.Log.Debugw(
		"query", oneLine(query),
		"args", []any{username, email},
		"result", user.UserID,
		"error", err,
	)

	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &user, nil
}
