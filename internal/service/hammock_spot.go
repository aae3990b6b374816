// Package service contains the business logic for the Hammock Spots API.
// Services validate inputs, enforce ownership, and orchestrate repo calls.
// Services depend on the repo interface, never on a concrete store.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/repo"
)

// HammockSpotService implements business logic for HammockSpot operations.
//
// Every by-id operation runs the same ordered pipeline:
//
//	lookup → HandleNotFound → [RequireOwnership] → act
//
// The first failing step short-circuits the rest; mutating repo calls are
// only reached once every gate before them has passed.
type HammockSpotService struct {
	repo repo.HammockSpotRepo
}

// NewHammockSpotService constructs a HammockSpotService backed by the provided repo.
func NewHammockSpotService(r repo.HammockSpotRepo) *HammockSpotService {
	return &HammockSpotService{repo: r}
}

// List returns every spot in store order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *HammockSpotService) List(ctx context.Context) ([]domain.HammockSpot, error) {
	spots, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.HammockSpotService.List: %w", err)
	}
	if spots == nil {
		return []domain.HammockSpot{}, nil
	}
	return spots, nil
}

// Get returns a single spot by ID.
// Returns domain.ErrNotFound if no spot has that ID.
func (s *HammockSpotService) Get(ctx context.Context, id uuid.UUID) (domain.HammockSpot, error) {
	spot, err := s.lookup(ctx, id)
	if err != nil {
		return domain.HammockSpot{}, fmt.Errorf("service.HammockSpotService.Get: %w", err)
	}
	return spot, nil
}

// Create validates the candidate, stamps the principal as owner, and persists it.
// Returns domain.ErrValidation if any required field is missing or invalid.
func (s *HammockSpotService) Create(ctx context.Context, p domain.Principal, in domain.NewHammockSpot) (domain.HammockSpot, error) {
	if err := validateInput(in); err != nil {
		return domain.HammockSpot{}, fmt.Errorf("service.HammockSpotService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, domain.HammockSpot{
		Name:    in.Name,
		Lat:     *in.Lat,
		Lng:     *in.Lng,
		OwnerID: p.ID,
	})
	if err != nil {
		return domain.HammockSpot{}, fmt.Errorf("service.HammockSpotService.Create: %w", err)
	}
	return created, nil
}

// Update merges patch into the spot identified by id.
// Returns domain.ErrNotFound if the spot does not exist, domain.ErrForbidden
// if p does not own it, and domain.ErrValidation if a supplied field is
// invalid. An empty patch passes the gates and then leaves the record as is.
func (s *HammockSpotService) Update(ctx context.Context, p domain.Principal, id uuid.UUID, patch domain.HammockSpotPatch) error {
	if _, err := s.authorize(ctx, p, id); err != nil {
		return fmt.Errorf("service.HammockSpotService.Update: %w", err)
	}
	if patch.IsEmpty() {
		return nil
	}
	if err := validateInput(patch); err != nil {
		return fmt.Errorf("service.HammockSpotService.Update: %w", err)
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("service.HammockSpotService.Update: %w", err)
	}
	return nil
}

// Delete permanently removes the spot identified by id.
// Returns domain.ErrNotFound if the spot does not exist and
// domain.ErrForbidden if p does not own it.
func (s *HammockSpotService) Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if _, err := s.authorize(ctx, p, id); err != nil {
		return fmt.Errorf("service.HammockSpotService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.HammockSpotService.Delete: %w", err)
	}
	return nil
}

// lookup is the fetch step shared by every by-id operation.
func (s *HammockSpotService) lookup(ctx context.Context, id uuid.UUID) (domain.HammockSpot, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.HammockSpot{}, err
	}
	return domain.HandleNotFound(l)
}

// authorize is lookup followed by the ownership gate.
func (s *HammockSpotService) authorize(ctx context.Context, p domain.Principal, id uuid.UUID) (domain.HammockSpot, error) {
	spot, err := s.lookup(ctx, id)
	if err != nil {
		return domain.HammockSpot{}, err
	}
	return domain.RequireOwnership(p, spot)
}
