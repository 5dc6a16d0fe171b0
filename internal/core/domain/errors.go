package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrVariantNotFound    = errors.New("variant not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicate          = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OrderRejectedError reports which line item made a placement fail.
// It wraps ErrInsufficientStock or ErrVariantNotFound.
type OrderRejectedError struct {
	Item VariantKey
	Err  error
}

func (e *OrderRejectedError) Error() string {
	return fmt.Sprintf("order rejected: %s: %v", e.Item, e.Err)
}

func (e *OrderRejectedError) Unwrap() error {
	return e.Err
}
