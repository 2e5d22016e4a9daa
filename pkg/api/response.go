package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/stuffkit/pkg/collection"
	"github.com/dmitrymomot/stuffkit/pkg/color"
	"github.com/dmitrymomot/stuffkit/pkg/logger"
	"github.com/dmitrymomot/stuffkit/pkg/validator"
)

// Response is the envelope of every JSON body the playground returns.
type Response struct {
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Error   *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, code string, data any) {
	writeJSON(w, http.StatusOK, Response{Code: code, Data: data})
}

// fail maps err onto a status and error envelope. Unknown errors are logged
// and reported as internal_error without their message.
func fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	} else {
		log.DebugContext(r.Context(), "request rejected", logger.Error(err), slog.String("code", body.Code))
	}
	writeJSON(w, status, body)
}

func errorResponse(err error) (int, Response) {
	detail := &ErrorDetail{Code: ErrInternal.Code, Message: "internal error"}
	status := http.StatusInternalServerError
	var meta map[string]any

	var (
		tooLarge *collection.ElementTooLargeError
		invalid  validator.ValidationErrors
		httpErr  HTTPError
	)
	switch {
	case errors.As(err, &tooLarge):
		status = http.StatusUnprocessableEntity
		detail.Code = "element_too_large"
		detail.Message = tooLarge.Error()
		meta = map[string]any{
			"index":    tooLarge.Index,
			"weight":   tooLarge.Weight,
			"capacity": tooLarge.Capacity,
		}
	case errors.Is(err, collection.ErrInvalidCapacity):
		status = http.StatusUnprocessableEntity
		detail.Code = "invalid_capacity"
		detail.Message = err.Error()
	case errors.As(err, &invalid):
		status = http.StatusUnprocessableEntity
		detail.Code = "validation_error"
		detail.Message = validator.ErrValidationFailed.Error()
		detail.Details = make(map[string][]string, len(invalid))
		for _, field := range invalid.Fields() {
			detail.Details[field] = invalid.Get(field)
		}
	case errors.Is(err, color.ErrInvalidColor):
		status = http.StatusUnprocessableEntity
		detail.Code = "invalid_color"
		detail.Message = err.Error()
	case errors.Is(err, collection.ErrUnknownMeasure),
		errors.Is(err, collection.ErrUnknownEncoding):
		status = http.StatusBadRequest
		detail.Code = "invalid_weight"
		detail.Message = err.Error()
	case errors.Is(err, validator.ErrUnknownRuleKind),
		errors.Is(err, validator.ErrInvalidRuleValue):
		status = http.StatusBadRequest
		detail.Code = "invalid_rule"
		detail.Message = err.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Status
		detail.Code = httpErr.Code
		detail.Message = err.Error()
		if detail.Message == httpErr.Code {
			detail.Message = http.StatusText(httpErr.Status)
		}
	}

	return status, Response{Code: detail.Code, Meta: meta, Error: detail}
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return ErrRequestTooLarge
		}
		return &requestError{HTTPError: ErrBadRequest, cause: err}
	}
	return nil
}

// requestError carries the decode failure as the message of a 400.
type requestError struct {
	HTTPError
	cause error
}

func (e *requestError) Error() string { return "invalid request body: " + e.cause.Error() }
func (e *requestError) Unwrap() error { return e.HTTPError }
