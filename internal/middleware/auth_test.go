package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/middleware"
)

// stubAuthenticator accepts exactly one token.
type stubAuthenticator struct {
	token     string
	principal domain.Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (domain.Principal, error) {
	if token != s.token {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return s.principal, nil
}

// recordingErrorWriter writes 401 for unauthenticated errors and remembers
// the error it was handed.
type recordingErrorWriter struct{ err error }

func (e *recordingErrorWriter) write(w http.ResponseWriter, _ *http.Request, err error) {
	e.err = err
	if errors.Is(err, domain.ErrUnauthenticated) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

func TestRequireAuth(t *testing.T) {
	principal := domain.Principal{ID: uuid.New()}
	authn := stubAuthenticator{token: "good-token", principal: principal}

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid bearer", "Bearer good-token", http.StatusOK},
		{"lowercase scheme", "bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen domain.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, ok := middleware.PrincipalFrom(r.Context())
				require.True(t, ok, "principal should be in context")
				seen = p
				w.WriteHeader(http.StatusOK)
			})
			ew := &recordingErrorWriter{}
			h := middleware.RequireAuth(authn, ew.write)(next)

			req := httptest.NewRequest(http.MethodPost, "/hammockSpots", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, principal, seen)
				assert.NoError(t, ew.err)
			} else {
				assert.ErrorIs(t, ew.err, domain.ErrUnauthenticated)
			}
		})
	}
}

func TestPrincipalFrom_Missing(t *testing.T) {
	_, ok := middleware.PrincipalFrom(context.Background())

	assert.False(t, ok)
}
