package collection

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// SubList returns the elements at the given indexes, in the order the
// indexes are listed. Indexes may repeat.
func SubList[T any](items []T, indexes ...int) ([]T, error) {
	out := make([]T, 0, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(items) {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, idx, len(items))
		}
		out = append(out, items[idx])
	}
	return out, nil
}

// SliceMap returns a new map holding only the entries of m whose key is listed.
func SliceMap[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// FindEntry returns the first entry, in ascending key order, for which
// predicate returns true.
func FindEntry[K cmp.Ordered, V any](m map[K]V, predicate func(K, V) bool) (K, V, bool) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if v := m[k]; predicate(k, v) {
			return k, v, true
		}
	}

	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}
