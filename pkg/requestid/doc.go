// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a client supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-], otherwise it generates a UUIDv4
// (github.com/google/uuid). The id is stored in the request context
// (FromContext) and echoed in the response header. LoggerExtractor plugs the
// id into pkg/logger so request scoped records carry a "request_id" attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Invalid ids are replaced silently; the package returns no errors.
package requestid
