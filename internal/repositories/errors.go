package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

const uniqueViolation = "23505"

// mapUniqueViolation turns a unique constraint failure into models.ErrAlreadyExists.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", models.ErrAlreadyExists, pgErr.ConstraintName)
	}
	return err
}

// executor returns the request transaction when there is one, else the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
