package domain

import "errors"

// ErrNotFound is returned when the requested resource does not exist in the
// store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, latitude out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrBadRequest is returned when a request cannot be decoded at all
// (malformed JSON). Handlers should map this to HTTP 400.
var ErrBadRequest = errors.New("bad request")

// ErrUnauthenticated is returned when a mutating request carries no valid
// bearer credential.
// Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrPayloadTooLarge is returned when a request body exceeds the configured
// size limit.
// Handlers should map this to HTTP 413.
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrForbidden is returned when the principal does not own the record it is
// trying to modify.
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")
