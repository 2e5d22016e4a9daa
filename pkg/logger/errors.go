package logger

import "errors"

var (
	// ErrInvalidPriority is returned when a priority name is not recognised.
	ErrInvalidPriority = errors.New("invalid log priority")

	// ErrInvalidFormat is returned when a format name is not recognised.
	ErrInvalidFormat = errors.New("invalid log format")
)
