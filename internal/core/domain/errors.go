package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ItemError ties a sale rejection to the product that caused it.
type ItemError struct {
	ProductID int64
	Err       error
}

func (e *ItemError) Error() string {
	switch {
	case errors.Is(e.Err, ErrProductNotFound):
		return fmt.Sprintf("product %d does not exist", e.ProductID)
	case errors.Is(e.Err, ErrInsufficientStock):
		return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
	default:
		return fmt.Sprintf("product %d: %v", e.ProductID, e.Err)
	}
}

func (e *ItemError) Unwrap() error { return e.Err }

// IsRejection reports whether err is a client-side failure rather than an
// unexpected one.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrInsufficientStock)
}
