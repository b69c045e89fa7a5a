package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the catalog has no recipe for the requested id.
	ErrNotFound = errors.New("recipe not found")

	// ErrUnauthenticated is returned when an operation requires a user and none is present.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrInvalidRecipeID  = errors.New("recipe id is required")
	ErrEmptyQuery       = errors.New("search query is required")
	ErrIncompleteRecipe = errors.New("catalog returned a recipe without a title")
)

// DependencyError wraps a failure of the upstream recipe catalog.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// StorageError wraps a failure of the record store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
