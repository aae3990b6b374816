package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/hammock-spots/internal/domain"
)

// Authenticator turns a raw bearer token into a principal.
// *auth.JWTService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}

// ErrorWriter renders err as an HTTP response. Middleware that can reject a
// request takes one so that every failure goes through the same error mapping
// as the handlers.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal stored by RequireAuth.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// RequireAuth returns a middleware that rejects requests lacking a valid
// "Authorization: Bearer <token>" header. On success the principal is placed
// in the request context for PrincipalFrom.
func RequireAuth(authn Authenticator, onError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				onError(w, r, err)
				return
			}

			p, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				onError(w, r, err)
				return
			}

			AddLogAttrs(r.Context(), slog.String("principal", p.ID.String()))
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: authorization header required", domain.ErrUnauthenticated)
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: invalid authorization format", domain.ErrUnauthenticated)
	}
	return strings.TrimSpace(token), nil
}
