package validator

import "errors"

// RequireNotEmpty returns value unchanged, or an error carrying message when
// value is empty.
func RequireNotEmpty[S ~string](value S, message string) (S, error) {
	if value == "" {
		return value, errors.Join(ErrFieldRequired, errors.New(message))
	}
	return value, nil
}

// RequireNotEmptySlice is RequireNotEmpty for slices.
func RequireNotEmptySlice[T any](value []T, message string) ([]T, error) {
	if len(value) == 0 {
		return value, errors.Join(ErrFieldRequired, errors.New(message))
	}
	return value, nil
}
