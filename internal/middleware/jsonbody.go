package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pkordes/hammock-spots/internal/domain"
)

// RequireSingleJSONValue returns a middleware that rejects a request body
// unless it is empty or holds exactly one JSON value. json.Decoder stops after
// the first value, so without this check `{"a":1} garbage` would be accepted.
// A body over the size limit is reported as domain.ErrPayloadTooLarge.
func RequireSingleJSONValue(onError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(r.Body)
			r.Body.Close()
			if err != nil {
				var sizeErr *http.MaxBytesError
				if errors.As(err, &sizeErr) {
					onError(w, r, fmt.Errorf("%w: limit is %d bytes", domain.ErrPayloadTooLarge, sizeErr.Limit))
					return
				}
				onError(w, r, fmt.Errorf("%w: reading body: %v", domain.ErrBadRequest, err))
				return
			}

			if len(bytes.TrimSpace(raw)) > 0 {
				if err := singleValue(raw); err != nil {
					onError(w, r, err)
					return
				}
			}

			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
		})
	}
}

func singleValue(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var v json.RawMessage
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: malformed JSON body", domain.ErrBadRequest)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON body", domain.ErrBadRequest)
	}
	return nil
}
