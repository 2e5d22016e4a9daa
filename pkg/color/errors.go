package color

import "errors"

// ErrInvalidColor is returned when a string is not a supported color notation.
var ErrInvalidColor = errors.New("invalid color")
