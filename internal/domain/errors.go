// Package domain holds sentinel errors shared across layers.
package domain

import "errors"

var (
	// ErrOrderNotFound signals a missing order document or an empty order payload.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidFilter signals a filter set that violates the input contract.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidOrder signals an order payload that fails domain validation.
	ErrInvalidOrder = errors.New("invalid order")
)
