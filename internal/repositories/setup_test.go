package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/recipe-keeper/internal/migrations"
	"github.com/sbilibin2017/recipe-keeper/internal/models"
	"github.com/sbilibin2017/recipe-keeper/internal/testutil"
)

// setupPostgres starts a migrated postgres and returns a pool to it.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := testutil.SetupPostgres(t)
	db := testutil.ConnectPostgres(t, dsn)
	require.NoError(t, migrations.MigrateUp(dsn))

	return db
}

func insertUser(t *testing.T, db *sqlx.DB, username string) *models.UserDB {
	t.Helper()

	user, err := NewUserWriteRepository(db, nil).Save(context.Background(), username, "hash", username+"@example.com")
	require.NoError(t, err)
	return user
}

func insertRecipe(t *testing.T, db *sqlx.DB, recipeID, name string) *models.RecipeDB {
	t.Helper()

	recipe, err := NewRecipeWriteRepository(db).Save(context.Background(), &models.RecipeDB{
		RecipeID: recipeID,
		Name:     name,
		ImageURL: "https://spoonacular.com/recipeImages/" + recipeID + "-556x370.jpg",
	})
	require.NoError(t, err)
	return recipe
}
