package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/stuffkit/pkg/logger"
	"github.com/dmitrymomot/stuffkit/pkg/requestid"
)

// Option configures the router.
type Option func(*handlers)

// WithEncoding sets the tiktoken encoding used by the "tokens" weight.
func WithEncoding(encoding string) Option {
	return func(h *handlers) { h.encoding = encoding }
}

// Router returns the playground routes:
//
//	POST /chunk          split items into weighted chunks
//	POST /validate       run a rule chain over one text
//	POST /validate/form  validate several named fields at once
//	GET  /color?value=   normalise a color notation
//	GET  /health         liveness probe
//
// A nil logger discards output. Build log with requestid.LoggerExtractor to
// tag request scoped records, including the access log, with the request id.
func Router(log *slog.Logger, opts ...Option) chi.Router {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &handlers{log: log.With(logger.Component("api"))}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(accessLog(h.log))
	r.Use(middleware.Recoverer)

	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Get("/health", h.health)
	r.Post("/chunk", h.chunk)
	r.Post("/validate", h.validate)
	r.Post("/validate/form", h.validateForm)
	r.Get("/color", h.color)

	return r
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
