// Package handler implements the HTTP handlers for the Hammock Spots API.
// Server implements gen.StrictServerInterface, generated from
// api/openapi.yaml. Routes mounts it on an explicit chi router; nothing is
// registered globally.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config gen/config.yaml ../../api/openapi.yaml

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/handler/gen"
	"github.com/pkordes/hammock-spots/internal/middleware"
)

// HammockSpotServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type HammockSpotServicer interface {
	List(ctx context.Context) ([]domain.HammockSpot, error)
	Get(ctx context.Context, id uuid.UUID) (domain.HammockSpot, error)
	Create(ctx context.Context, p domain.Principal, in domain.NewHammockSpot) (domain.HammockSpot, error)
	Update(ctx context.Context, p domain.Principal, id uuid.UUID, patch domain.HammockSpotPatch) error
	Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

var _ gen.StrictServerInterface = (*Server)(nil)

// Server holds the dependencies shared by every handler.
type Server struct {
	spots HammockSpotServicer
	authn middleware.Authenticator
	log   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(spots HammockSpotServicer, authn middleware.Authenticator, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{spots: spots, authn: authn, log: log}
}

// Routes returns the route table: the generated operations plus the raw
// OpenAPI document. Decode failures, handler errors, malformed path
// parameters, unknown paths and unsupported methods all end in writeError.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errNoRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errMethodNotAllowed)
	})

	r.Get("/openapi.yaml", s.getOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.writeError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter: r,
		// The generated wrapper applies these in order, so the last one
		// runs first: auth, then body shape, then blank stripping.
		Middlewares: []gen.MiddlewareFunc{
			stripBlanksOnPatch,
			middleware.RequireSingleJSONValue(s.writeError),
			s.requireAuthWhereDeclared,
		},
		ErrorHandlerFunc: s.paramError,
	})

	return r
}

// requireAuthWhereDeclared enforces a bearer token on operations whose
// OpenAPI entry lists bearerAuth. The generated wrapper marks those requests
// by putting gen.BearerAuthScopes in the context.
func (s *Server) requireAuthWhereDeclared(next http.Handler) http.Handler {
	secured := middleware.RequireAuth(s.authn, s.writeError)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(gen.BearerAuthScopes).([]string); ok {
			secured.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// stripBlanksOnPatch runs middleware.RemoveBlankFields for updateHammockSpot,
// the only PATCH operation.
func stripBlanksOnPatch(next http.Handler) http.Handler {
	stripped := middleware.RemoveBlankFields(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			stripped.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
