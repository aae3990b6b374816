package domain

import "fmt"

// HandleNotFound is the gate placed after every lookup by id.
// It passes the found value through unchanged, or fails with ErrNotFound.
func HandleNotFound[T any](l Lookup[T]) (T, error) {
	v, ok := l.Get()
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// RequireOwnership passes spot through unchanged when p owns it, and fails
// with ErrForbidden otherwise. It must run before any mutating store call.
func RequireOwnership(p Principal, spot HammockSpot) (HammockSpot, error) {
	if spot.OwnerID != p.ID {
		return HammockSpot{}, fmt.Errorf("%w: hammock spot %s is owned by another user", ErrForbidden, spot.ID)
	}
	return spot, nil
}
