package domain

import "errors"

// Shared error taxonomy. Services return these (possibly wrapped with
// context); handlers map them onto HTTP status codes.
var (
	ErrNotFound            = errors.New("entity not found")
	ErrValidation          = errors.New("validation error")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrConflict            = errors.New("conflict")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrOverpayment         = errors.New("overpayment")
)

// ErrPersistence wraps storage-layer failures (connectivity, constraint
// violations that are not part of the domain contract). Retryable by the
// caller; never swallowed.
var ErrPersistence = errors.New("persistence error")
