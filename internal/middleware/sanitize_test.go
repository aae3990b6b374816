package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hammock-spots/internal/middleware"
)

// sanitizedBody runs body through RemoveBlankFields and returns what the next
// handler received.
func sanitizedBody(t *testing.T, body string) string {
	t.Helper()

	var got string
	h := middleware.RemoveBlankFields(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
	}))

	req := httptest.NewRequest(http.MethodPatch, "/hammockSpots/x", strings.NewReader(body))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRemoveBlankFields_StripsNestedBlanks(t *testing.T) {
	got := sanitizedBody(t, `{"hammockSpot":{"name":"","lat":"  ","lng":-73.9}}`)

	assert.JSONEq(t, `{"hammockSpot":{"lng":-73.9}}`, got)
}

func TestRemoveBlankFields_KeepsNonBlankValues(t *testing.T) {
	got := sanitizedBody(t, `{"hammockSpot":{"name":"Shadier Oak","lat":0,"lng":40.123456789012}}`)

	assert.JSONEq(t, `{"hammockSpot":{"name":"Shadier Oak","lat":0,"lng":40.123456789012}}`, got)
}

func TestRemoveBlankFields_AllBlankBecomesEmptyObject(t *testing.T) {
	got := sanitizedBody(t, `{"hammockSpot":{"name":"","lat":"","lng":""}}`)

	assert.JSONEq(t, `{"hammockSpot":{}}`, got)
}

func TestRemoveBlankFields_ObjectsInsideArrays(t *testing.T) {
	got := sanitizedBody(t, `{"items":[{"a":"","b":"x"},"",3]}`)

	assert.JSONEq(t, `{"items":[{"b":"x"},"",3]}`, got)
}

func TestRemoveBlankFields_InvalidJSONPassesThrough(t *testing.T) {
	got := sanitizedBody(t, `{"hammockSpot":`)

	assert.Equal(t, `{"hammockSpot":`, got)
}

func TestRemoveBlankFields_NonObjectPassesThrough(t *testing.T) {
	got := sanitizedBody(t, `["", "x"]`)

	assert.Equal(t, `["", "x"]`, got)
}
