// Package api exposes the chunker, the validator chain and the color parser
// over HTTP for manual exploration.
//
// Every response uses the Response envelope. Failures carry an ErrorDetail
// whose code is one of:
//
//	bad_request        malformed JSON or unknown fields
//	request_too_large  body over the server limit
//	element_too_large  one item outweighs capacity (meta: index, weight, capacity)
//	invalid_capacity   non-positive capacity with "strict": true
//	invalid_weight     unknown weight measure or token encoding
//	invalid_rule       unknown rule kind or bad rule value
//	validation_error   /validate/form found failing fields (details per field)
//	invalid_color      unsupported color notation
//	not_found, method_not_allowed, internal_error
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg, api.Router(log, api.WithEncoding("cl100k_base")))
//	_ = srv.Run(ctx)
//
//	curl -s localhost:8080/chunk -d '{"items":["a","bb","ccc"],"capacity":3,"weight":"bytes"}'
package api
