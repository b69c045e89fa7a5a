package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/recipe-keeper/internal/models"
)

func TestUserRepositories(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db, nil)

	alice, err := writeRepo.Save(ctx, "alice", "bcrypt-hash", "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, alice.UserID)
	assert.Equal(t, "alice", alice.Username)
	assert.Equal(t, "bcrypt-hash", alice.PasswordHash)

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.UserID, user.UserID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("GetByUsername is case-sensitive", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "Alice")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, alice.UserID)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Save duplicate username", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "alice", "other", "other@example.com")
		assert.ErrorIs(t, err, models.ErrAlreadyExists)
	})

	t.Run("Save shared email", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "alice2", "hash", "alice@example.com")
		assert.NoError(t, err)
	})
}

func TestUserWriteRepository_SaveConcurrency(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewUserWriteRepository(db, nil)

	const numGoroutines = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
	)
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, "racer", "hash", "racer@example.com")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, models.ErrAlreadyExists):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, numGoroutines-1, dupes)
}
