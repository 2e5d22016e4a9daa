package parse

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Enum returns the member of values whose name equals value. With ignoreCase
// names are compared after Unicode case folding.
func Enum[E ~string](value string, values []E, ignoreCase bool) (E, error) {
	var zero E
	if len(values) == 0 {
		return zero, fmt.Errorf("%w: %T", ErrNoEnumValues, zero)
	}

	if ignoreCase {
		folder := cases.Fold()
		want := folder.String(value)
		for _, v := range values {
			if folder.String(string(v)) == want {
				return v, nil
			}
		}
	} else {
		for _, v := range values {
			if string(v) == value {
				return v, nil
			}
		}
	}

	return zero, fmt.Errorf("%w: %T has no value %q", ErrUnknownEnumValue, zero, value)
}
