package handler

import (
	"context"
	"fmt"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/handler/gen"
	"github.com/pkordes/hammock-spots/internal/middleware"
)

// ListHammockSpots handles GET /hammockSpots.
func (s *Server) ListHammockSpots(ctx context.Context, _ gen.ListHammockSpotsRequestObject) (gen.ListHammockSpotsResponseObject, error) {
	spots, err := s.spots.List(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]gen.HammockSpot, len(spots))
	for i, spot := range spots {
		data[i] = spotToResponse(spot)
	}
	return gen.ListHammockSpots200JSONResponse{HammockSpot: data}, nil
}

// GetHammockSpot handles GET /hammockSpots/{id}.
func (s *Server) GetHammockSpot(ctx context.Context, req gen.GetHammockSpotRequestObject) (gen.GetHammockSpotResponseObject, error) {
	spot, err := s.spots.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return gen.GetHammockSpot200JSONResponse{HammockSpot: spotToResponse(spot)}, nil
}

// CreateHammockSpot handles POST /hammockSpots.
// Only name, lat and lng are read from the body; the owner is the caller.
func (s *Server) CreateHammockSpot(ctx context.Context, req gen.CreateHammockSpotRequestObject) (gen.CreateHammockSpotResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	fields := requestFields(req.Body)
	in := domain.NewHammockSpot{Lat: fields.Lat, Lng: fields.Lng}
	if fields.Name != nil {
		in.Name = *fields.Name
	}

	created, err := s.spots.Create(ctx, p, in)
	if err != nil {
		return nil, err
	}
	return gen.CreateHammockSpot201JSONResponse{HammockSpot: spotToResponse(created)}, nil
}

// UpdateHammockSpot handles PATCH /hammockSpots/{id}.
// Blank strings were already stripped from the body by RemoveBlankFields.
func (s *Server) UpdateHammockSpot(ctx context.Context, req gen.UpdateHammockSpotRequestObject) (gen.UpdateHammockSpotResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	fields := requestFields(req.Body)
	patch := domain.HammockSpotPatch{Name: fields.Name, Lat: fields.Lat, Lng: fields.Lng}
	if err := s.spots.Update(ctx, p, req.Id, patch); err != nil {
		return nil, err
	}
	return gen.UpdateHammockSpot204Response{}, nil
}

// DeleteHammockSpot handles DELETE /hammockSpots/{id}.
func (s *Server) DeleteHammockSpot(ctx context.Context, req gen.DeleteHammockSpotRequestObject) (gen.DeleteHammockSpotResponseObject, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.spots.Delete(ctx, p, req.Id); err != nil {
		return nil, err
	}
	return gen.DeleteHammockSpot204Response{}, nil
}

// --- request helpers --------------------------------------------------------

// principal returns the identity placed in the context by RequireAuth.
func principal(ctx context.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return domain.Principal{}, fmt.Errorf("%w: authorization header required", domain.ErrUnauthenticated)
	}
	return p, nil
}

// requestFields unwraps the {"hammockSpot": {...}} envelope. A missing body
// or envelope yields empty fields; the service decides whether that is
// acceptable.
func requestFields(body *gen.HammockSpotRequest) gen.HammockSpotFields {
	if body == nil || body.HammockSpot == nil {
		return gen.HammockSpotFields{}
	}
	return *body.HammockSpot
}

// --- mapping helpers --------------------------------------------------------

// spotToResponse converts a domain.HammockSpot into its JSON representation.
func spotToResponse(s domain.HammockSpot) gen.HammockSpot {
	return gen.HammockSpot{
		Id:        s.ID,
		Name:      s.Name,
		Lat:       s.Lat,
		Lng:       s.Lng,
		Owner:     s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
