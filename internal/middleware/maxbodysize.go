package middleware

import (
	"fmt"
	"net/http"

	"github.com/pkordes/hammock-spots/internal/domain"
)

// NewMaxBodySizeHandler returns a middleware that limits request bodies to
// limit bytes. A request whose Content-Length already exceeds the limit is
// handed to onError as domain.ErrPayloadTooLarge without reaching next.
// Bodies of unknown length are wrapped in http.MaxBytesReader, so the
// handler's own read fails with *http.MaxBytesError once the limit is crossed.
func NewMaxBodySizeHandler(limit int64, onError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				onError(w, r, fmt.Errorf("%w: limit is %d bytes", domain.ErrPayloadTooLarge, limit))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
