package parse

import "errors"

var (
	// ErrNoEnumValues is returned when Enum is called without candidate values.
	ErrNoEnumValues = errors.New("enum type has no values")

	// ErrUnknownEnumValue is returned when no candidate matches the input.
	ErrUnknownEnumValue = errors.New("enum type has no such value")
)
