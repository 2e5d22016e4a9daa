package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required value is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrUnknownRuleKind is returned when a rule file names a kind that does not exist.
	ErrUnknownRuleKind = errors.New("unknown rule kind")

	// ErrInvalidRuleValue is returned when a rule's value has the wrong type or range.
	ErrInvalidRuleValue = errors.New("invalid rule value")

	// ErrInvalidRuleFile is returned when a rule file cannot be decoded.
	ErrInvalidRuleFile = errors.New("invalid rule file")
)
