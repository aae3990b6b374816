package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// requestAttrs collects attributes that inner layers learn about a request
// (the authenticated principal, the error code) for the single access-log line.
type requestAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

type requestAttrsKey struct{}

// AddLogAttrs attaches attrs to the access-log line NewSlogLogger writes for
// the request carried by ctx. It is a no-op outside NewSlogLogger.
func AddLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	ra, ok := ctx.Value(requestAttrsKey{}).(*requestAttrs)
	if !ok {
		return
	}
	ra.mu.Lock()
	ra.attrs = append(ra.attrs, attrs...)
	ra.mu.Unlock()
}

// NewSlogLogger returns a middleware that logs each request as one structured
// JSON line via the provided slog.Logger: method, path, status, bytes written,
// duration, the request ID set by chi's RequestID middleware, and anything
// added with AddLogAttrs. 5xx responses log at ERROR, 4xx at WARN.
//
// Wire it after chimiddleware.RequestID so the request ID is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ra := &requestAttrs{}
			r = r.WithContext(context.WithValue(r.Context(), requestAttrsKey{}, ra))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK // handler wrote nothing
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", chimiddleware.GetReqID(r.Context())),
			}
			ra.mu.Lock()
			attrs = append(attrs, ra.attrs...)
			ra.mu.Unlock()

			log.LogAttrs(r.Context(), level, "request", attrs...)
		})
	}
}
