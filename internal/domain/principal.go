package domain

import "github.com/google/uuid"

// Principal is the authenticated identity derived from a bearer credential.
type Principal struct {
	ID uuid.UUID
}
