package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidCategory = errors.New("category is required")
	ErrNegativeStock   = errors.New("stock cannot be negative")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")

	// Soft-delete errors
	ErrAlreadyDeleted      = errors.New("record is already deleted")
	ErrNotDeleted          = errors.New("record is not deleted")
	ErrCannotModifyDeleted = errors.New("cannot modify a deleted record")
)
