package collection

import (
	"iter"
	"slices"
)

// WeightFunc returns the non-negative cost of an element.
type WeightFunc[T any] func(T) int

// Chunked partitions items into contiguous chunks whose total weight does not
// exceed capacity. Elements keep their order and are never split.
//
// A non-positive capacity or an empty input yields a single chunk holding the
// whole input. An element heavier than capacity fails the whole call with
// *ElementTooLargeError and no partial result. A nil weight counts every
// element as 1.
//
// Returned chunks never alias items.
func Chunked[T any](items []T, capacity int, weight WeightFunc[T]) ([][]T, error) {
	return chunked(slices.Values(items), capacity, weight)
}

// ChunkedStrict behaves like Chunked but rejects a non-positive capacity with
// *InvalidCapacityError instead of passing the input through.
func ChunkedStrict[T any](items []T, capacity int, weight WeightFunc[T]) ([][]T, error) {
	if capacity <= 0 {
		return nil, &InvalidCapacityError{Capacity: capacity}
	}
	return chunked(slices.Values(items), capacity, weight)
}

// ChunkedSeq is Chunked over an iterator. The sequence is consumed once.
func ChunkedSeq[T any](seq iter.Seq[T], capacity int, weight WeightFunc[T]) ([][]T, error) {
	return chunked(seq, capacity, weight)
}

func chunked[T any](seq iter.Seq[T], capacity int, weight WeightFunc[T]) ([][]T, error) {
	if capacity <= 0 {
		all := slices.Collect(seq)
		if all == nil {
			all = []T{}
		}
		return [][]T{all}, nil
	}
	if weight == nil {
		weight = Unit[T]
	}

	var (
		chunks  [][]T
		current []T
		sum     int
		i       int
	)

	for e := range seq {
		w := weight(e)
		if w > capacity {
			return nil, &ElementTooLargeError{Index: i, Weight: w, Capacity: capacity}
		}

		// 0 <= sum <= capacity, so capacity-sum cannot overflow. current is
		// never empty here: a fresh chunk accepts any element that passed above.
		if w > capacity-sum {
			chunks = append(chunks, current)
			current = nil
			sum = 0
		}

		current = append(current, e)
		sum += w
		i++
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	if len(chunks) == 0 {
		return [][]T{{}}, nil
	}

	return chunks, nil
}
