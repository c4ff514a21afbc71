package payment

import "errors"

// ErrForbidden is returned when the actor is neither the booking's owner nor
// an admin. Same contract as the booking module.
var ErrForbidden = errors.New("forbidden")
