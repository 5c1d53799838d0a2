package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrNoLineItems       = errors.New("sale must contain at least one line item")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrDuplicateProduct  = errors.New("duplicate product in line items")
	ErrFutureSaleDate    = errors.New("sale date cannot be in the future")
	ErrMissingCustomer   = errors.New("customer name is required")
	ErrMissingEmail      = errors.New("customer email is required")
	ErrMissingAddress    = errors.New("customer address is required")
	ErrProductNotFound   = errors.New("product not found or not available for sale")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStorageConflict   = errors.New("storage conflict: transaction aborted, retry the request")
	ErrNegativeUnitPrice = errors.New("unit price must be positive")
)
