package booking

import (
	"errors"

	"tourism/internal/domain"
)

var (
	ErrValidation          = domain.ErrValidation
	ErrNotFound            = domain.ErrNotFound
	ErrInvalidTransition   = domain.ErrInvalidTransition
	ErrInsufficientPayment = domain.ErrInsufficientPayment
	ErrForbidden           = errors.New("forbidden")
)
