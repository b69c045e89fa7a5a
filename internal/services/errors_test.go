package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/recipe-keeper/internal/services"
)

func TestDependencyError(t *testing.T) {
	err := error(&services.DependencyError{Op: "search", Err: context.DeadlineExceeded})

	assert.EqualError(t, err, "catalog search: context deadline exceeded")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var depErr *services.DependencyError
	assert.True(t, errors.As(err, &depErr))
	assert.Equal(t, "search", depErr.Op)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&services.StorageError{Op: "save recipe", Err: cause})

	assert.EqualError(t, err, "store save recipe: connection refused")
	assert.ErrorIs(t, err, cause)

	var depErr *services.DependencyError
	assert.False(t, errors.As(err, &depErr))
}
