package api

import "net/http"

// HTTPError is an error with a fixed status and machine readable code.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string {
	return e.Code
}

var (
	ErrBadRequest       = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrNotFound         = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
	ErrRequestTooLarge  = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "request_too_large"}
	ErrInternal         = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error"}
)
