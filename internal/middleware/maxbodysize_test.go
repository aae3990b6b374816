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

// bodyTooLarge records what the middleware handed to its ErrorWriter.
type bodyTooLarge struct{ err error }

func (b *bodyTooLarge) write(w http.ResponseWriter, _ *http.Request, err error) {
	b.err = err
	w.WriteHeader(http.StatusRequestEntityTooLarge)
}

// readAll stands in for a JSON-decoding handler and reports the read error.
func readAll(readErr *error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, *readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}
}

func TestMaxBodySizeHandler_SmallBody_PassesThrough(t *testing.T) {
	var onError bodyTooLarge
	var readErr error
	h := middleware.NewMaxBodySizeHandler(100, onError.write)(readAll(&readErr))

	req := httptest.NewRequest(http.MethodPost, "/hammockSpots", strings.NewReader(`{"hammockSpot":{"name":"Shady Oak"}}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, readErr)
	assert.NoError(t, onError.err)
}

func TestMaxBodySizeHandler_ContentLengthExceedsLimit_RejectedBeforeHandler(t *testing.T) {
	var onError bodyTooLarge
	h := middleware.NewMaxBodySizeHandler(100, onError.write)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/hammockSpots", strings.NewReader(strings.Repeat("x", 200)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.ErrorIs(t, onError.err, domain.ErrPayloadTooLarge)
}

func TestMaxBodySizeHandler_StreamingBodyExceedsLimit_FailsRead(t *testing.T) {
	var onError bodyTooLarge
	var readErr error
	h := middleware.NewMaxBodySizeHandler(100, onError.write)(readAll(&readErr))

	req := httptest.NewRequest(http.MethodPatch, "/hammockSpots/x", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = -1 // unknown length
	h.ServeHTTP(httptest.NewRecorder(), req)

	var sizeErr *http.MaxBytesError
	require.True(t, errors.As(readErr, &sizeErr))
	assert.EqualValues(t, 100, sizeErr.Limit)
	assert.NoError(t, onError.err)
}

// The blank-field sanitizer reads the body first; the size error must still
// reach the handler behind it.
func TestMaxBodySizeHandler_ErrorSurvivesRemoveBlankFields(t *testing.T) {
	var onError bodyTooLarge
	var readErr error
	h := middleware.NewMaxBodySizeHandler(16, onError.write)(middleware.RemoveBlankFields(readAll(&readErr)))

	req := httptest.NewRequest(http.MethodPatch, "/hammockSpots/x", strings.NewReader(`{"hammockSpot":{"name":"`+strings.Repeat("x", 64)+`"}}`))
	req.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), req)

	var sizeErr *http.MaxBytesError
	assert.True(t, errors.As(readErr, &sizeErr))
}
