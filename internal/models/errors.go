package models

import "errors"

var (
	// ErrAlreadyExists is returned by repositories when an insert hits a unique constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrRecipeNotFound is returned by the upstream catalog when an id is unknown.
	ErrRecipeNotFound = errors.New("recipe not found upstream")
)
