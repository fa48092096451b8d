package types

import (
	"errors"
	"fmt"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when a referenced entity does not exist, either in
// the local mirror or on the server.
var ErrNotFound = errors.New("not found")

// ErrInvalidQuantity is returned when a cart mutation asks for a quantity
// below 1. Zero is never a valid quantity; removal is a separate operation.
var ErrInvalidQuantity = errors.New("quantity must be >= 1")

// ------------------------------
// Validation helpers
// ------------------------------

// ValidateQuantity enforces the cart line quantity floor.
func ValidateQuantity(q int) error {
	if q < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidQuantity, q)
	}
	return nil
}

// ValidateID checks a server-assigned id is present.
func ValidateID(id int64, field string) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive id", field)
	}
	return nil
}
