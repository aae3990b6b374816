// Package domain contains the core data types for the Hammock Spots API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// HammockSpot is a named place where a hammock can be hung.
// A persisted HammockSpot is always fully populated; partial records never
// reach the store.
type HammockSpot struct {
	ID        uuid.UUID
	Name      string
	Lat       float64
	Lng       float64
	OwnerID   uuid.UUID // principal that created the record
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewHammockSpot is the candidate record accepted by Create.
// Lat and Lng are pointers so that an omitted coordinate can be told apart
// from a legitimate zero (the equator / prime meridian).
type NewHammockSpot struct {
	Name string   `validate:"required,notblank"`
	Lat  *float64 `validate:"required,gte=-90,lte=90"`
	Lng  *float64 `validate:"required,gte=-180,lte=180"`
}

// HammockSpotPatch carries the fields of a partial update.
// A nil field is left untouched in the stored record.
type HammockSpotPatch struct {
	Name *string  `validate:"omitnil,notblank"`
	Lat  *float64 `validate:"omitnil,gte=-90,lte=90"`
	Lng  *float64 `validate:"omitnil,gte=-180,lte=180"`
}

// IsEmpty reports whether the patch would change nothing.
func (p HammockSpotPatch) IsEmpty() bool {
	return p.Name == nil && p.Lat == nil && p.Lng == nil
}
