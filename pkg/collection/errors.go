package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrElementTooLarge is returned when a single element weighs more than the chunk capacity.
	ErrElementTooLarge = errors.New("element is larger than chunk capacity")

	// ErrInvalidCapacity is returned by ChunkedStrict for a non-positive capacity.
	ErrInvalidCapacity = errors.New("chunk capacity must be positive")

	// ErrIndexOutOfRange is returned when an index does not address an element.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ElementTooLargeError reports the element that can never fit a chunk.
type ElementTooLargeError struct {
	Index    int
	Weight   int
	Capacity int
}

func (e *ElementTooLargeError) Error() string {
	return fmt.Sprintf("element at position %d weighs %d, chunk capacity is %d", e.Index, e.Weight, e.Capacity)
}

// Is makes errors.Is(err, ErrElementTooLarge) hold.
func (e *ElementTooLargeError) Is(target error) bool {
	return target == ErrElementTooLarge
}

// InvalidCapacityError carries the rejected capacity.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("chunk capacity must be positive, got %d", e.Capacity)
}

func (e *InvalidCapacityError) Is(target error) bool {
	return target == ErrInvalidCapacity
}
