package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/middleware"
)

// jsonBodyResult runs body through RequireSingleJSONValue and reports the
// body the next handler saw and the error handed to the ErrorWriter.
func jsonBodyResult(t *testing.T, body io.Reader) (string, error) {
	t.Helper()

	var (
		gotErr  error
		gotBody string
	)
	onError := func(w http.ResponseWriter, _ *http.Request, err error) {
		gotErr = err
		w.WriteHeader(http.StatusBadRequest)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(b)
	})

	req := httptest.NewRequest(http.MethodPost, "/hammockSpots", body)
	middleware.RequireSingleJSONValue(onError)(next).ServeHTTP(httptest.NewRecorder(), req)
	return gotBody, gotErr
}

func TestRequireSingleJSONValue_SingleValuePassesThrough(t *testing.T) {
	body := `{"hammockSpot":{"name":"Shady Oak"}}` + "\n  "

	got, err := jsonBodyResult(t, strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestRequireSingleJSONValue_EmptyBodyPassesThrough(t *testing.T) {
	got, err := jsonBodyResult(t, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequireSingleJSONValue_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"trailing garbage", `{"hammockSpot":{}} trailing-garbage`, "unexpected data after JSON body"},
		{"second value", `{} {}`, "unexpected data after JSON body"},
		{"stray bracket", `{} ]`, "unexpected data after JSON body"},
		{"truncated", `{"hammockSpot":`, "malformed JSON body"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jsonBodyResult(t, strings.NewReader(tc.body))

			require.ErrorIs(t, err, domain.ErrBadRequest)
			assert.Contains(t, err.Error(), tc.wantMsg)
			assert.Empty(t, got, "next handler must not run")
		})
	}
}

func TestRequireSingleJSONValue_OversizedBody(t *testing.T) {
	var onError bodyTooLarge
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	h := middleware.NewMaxBodySizeHandler(16, onError.write)(middleware.RequireSingleJSONValue(onError.write)(next))

	req := httptest.NewRequest(http.MethodPost, "/hammockSpots", strings.NewReader(`{"hammockSpot":{"name":"`+strings.Repeat("x", 64)+`"}}`))
	req.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, called)
	assert.True(t, errors.Is(onError.err, domain.ErrPayloadTooLarge))
}
