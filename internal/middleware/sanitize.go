package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// RemoveBlankFields returns a middleware that strips blank string values from
// a JSON object request body before the handler sees it, at any depth:
//
//	{"hammockSpot": {"name": "", "lat": 1}} → {"hammockSpot": {"lat": 1}}
//
// A string is blank when it is empty or only whitespace. Bodies that are not a
// JSON object are passed through untouched for the handler to reject.
func RemoveBlankFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			// Typically the body-size limit. Replay what was read followed by
			// the same error so the handler's decoder reports it.
			r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), errReader{err}))
			next.ServeHTTP(w, r)
			return
		}

		var obj map[string]any
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber() // keep numbers exactly as sent
		if err := dec.Decode(&obj); err != nil || obj == nil {
			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
			return
		}

		cleaned, err := json.Marshal(stripBlanks(obj))
		if err != nil {
			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(cleaned))
		r.ContentLength = int64(len(cleaned))
		next.ServeHTTP(w, r)
	})
}

// stripBlanks removes blank strings from obj in place, recursing into nested
// objects and objects inside arrays.
func stripBlanks(obj map[string]any) map[string]any {
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) == "" {
				delete(obj, k)
			}
		case map[string]any:
			stripBlanks(val)
		case []any:
			for _, item := range val {
				if m, ok := item.(map[string]any); ok {
					stripBlanks(m)
				}
			}
		}
	}
	return obj
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }
