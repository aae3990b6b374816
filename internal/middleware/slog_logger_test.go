package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hammock-spots/internal/middleware"
)

// logOnce serves req through NewSlogLogger wrapped around inner and returns
// the single JSON log line it wrote.
func logOnce(t *testing.T, inner http.HandlerFunc, req *http.Request) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	middleware.NewSlogLogger(logger)(inner).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_logsRequestFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hammockSpots", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id"))

	entry := logOnce(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"hammockSpot":[]}`))
	}, req)

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/hammockSpots", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, len(`{"hammockSpot":[]}`), entry["bytes"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusNoContent, "INFO"},
		{http.StatusForbidden, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/hammockSpots/x", nil)
			entry := logOnce(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}, req)

			assert.Equal(t, tc.want, entry["level"])
		})
	}
}

func TestSlogLogger_includesAttrsAddedDownstream(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/hammockSpots/x", nil)

	entry := logOnce(t, func(w http.ResponseWriter, r *http.Request) {
		middleware.AddLogAttrs(r.Context(), slog.String("principal", "aaaa"))
		middleware.AddLogAttrs(r.Context(), slog.String("error_code", "forbidden"))
		w.WriteHeader(http.StatusForbidden)
	}, req)

	assert.Equal(t, "aaaa", entry["principal"])
	assert.Equal(t, "forbidden", entry["error_code"])
}

func TestAddLogAttrs_withoutLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		middleware.AddLogAttrs(context.Background(), slog.String("k", "v"))
	})
}
