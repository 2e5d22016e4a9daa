package textfield

import "errors"

var (
	// ErrFieldNotFound is returned when a form has no field with the given name.
	ErrFieldNotFound = errors.New("field not found")

	// ErrDuplicateField is returned when a form already has a field with the given name.
	ErrDuplicateField = errors.New("field already registered")

	// ErrNilField is returned when a nil field is added to a form.
	ErrNilField = errors.New("nil field")
)
