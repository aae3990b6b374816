package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/hammock-spots/internal/domain"
	"github.com/pkordes/hammock-spots/internal/handler/gen"
	"github.com/pkordes/hammock-spots/internal/middleware"
)

// Routing failures. They never leave this package.
var (
	errNoRoute          = errors.New("no such route")
	errMethodNotAllowed = errors.New("method not allowed")
)

// writeError is the single place where failures become HTTP responses.
// Handler errors, decode failures, path binding failures and the auth and
// body middleware all funnel through it, so a new route inherits the same
// status mapping without any extra code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)

	attrs := []any{
		"status", status,
		"code", body.Error.Code,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	}
	middleware.AddLogAttrs(r.Context(), slog.String("error_code", body.Error.Code))
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		s.log.DebugContext(r.Context(), "request rejected", attrs...)
	}

	writeJSON(w, status, body, s.log)
}

// WriteError renders err through the same mapping as the handlers. Middleware
// mounted in front of Routes uses it so its rejections share the JSON shape.
func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, err)
}

// requestError receives body decode failures from the generated strict
// handler.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, decodeError(err))
}

// paramError receives path binding failures from the generated chi wrapper.
// A malformed UUID can never name a record, so it is a validation failure.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *gen.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		s.writeError(w, r, fmt.Errorf("%w: %s must be a UUID", domain.ErrValidation, paramErr.ParamName))
		return
	}
	s.writeError(w, r, fmt.Errorf("%w: %v", domain.ErrBadRequest, err))
}

// classify maps an error to its status code and client-facing body.
// Anything unrecognised is a 500 whose message reveals nothing internal.
func classify(err error) (int, gen.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody("not_found", "hammock spot not found")
	case errors.Is(err, errNoRoute):
		return http.StatusNotFound, errorBody("not_found", "no such route")
	case errors.Is(err, errMethodNotAllowed):
		return http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed for this route")
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, errorBody("validation_error", detail(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, errorBody("bad_request", detail(err, domain.ErrBadRequest))
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorBody("unauthorized", detail(err, domain.ErrUnauthenticated))
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorBody("forbidden", "you do not own this hammock spot")
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "request body too large")
	default:
		return http.StatusInternalServerError, errorBody("internal_error", "internal server error")
	}
}

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// detail extracts the human-readable part that follows a wrapped sentinel.
// e.g. "service.HammockSpotService.Create: validation error: name is required"
// → "name is required". Falls back to the sentinel text itself.
func detail(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}

// decodeError translates an encoding/json failure on the request body into
// a domain sentinel. RequireSingleJSONValue has already rejected syntax
// errors, so what reaches here is mostly a value of the wrong type.
func decodeError(err error) error {
	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body is required", domain.ErrValidation)
	case errors.As(err, &sizeErr):
		return fmt.Errorf("%w: limit is %d bytes", domain.ErrPayloadTooLarge, sizeErr.Limit)
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: %s", domain.ErrValidation, typeMessage(typeErr))
	default:
		return fmt.Errorf("%w: malformed JSON body", domain.ErrBadRequest)
	}
}

// typeMessage describes a wrong-typed value. encoding/json reports a number
// too large for float64 as a type error whose value is "number <literal>".
func typeMessage(e *json.UnmarshalTypeError) string {
	field := e.Field
	if field == "" {
		field = "request body"
	}
	want := jsonKind(e.Type)
	if want == "a number" && strings.HasPrefix(e.Value, "number") {
		return field + " is out of range"
	}
	return field + " must be " + want
}

// jsonKind names t the way a JSON client would think of it.
func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "a valid value"
	}
}

// writeJSON encodes v with the given status. Encoding failures can only be
// logged: the status line has already been sent.
func writeJSON(w http.ResponseWriter, status int, v any, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode JSON response", "error", err)
	}
}
