// Package collection provides small generic helpers over slices, iterators
// and maps, the most important of which is weight-bounded chunking.
//
// # Chunking
//
// Chunked splits an ordered slice into contiguous groups so that the sum of
// each group's weight never exceeds a capacity. The split is greedy and
// stable: elements are never reordered, dropped, duplicated or split across
// chunks, and a chunk is closed only when the next element would overflow it.
//
//	batches, err := collection.Chunked(messages, 4096, collection.ByteLen)
//	if err != nil {
//	    var tooLarge *collection.ElementTooLargeError
//	    if errors.As(err, &tooLarge) {
//	        // tooLarge.Index can never fit in any batch
//	    }
//	}
//
// A non-positive capacity or an empty input is passed through as a single
// chunk. Callers that prefer to treat a non-positive capacity as a bug use
// ChunkedStrict, which fails with ErrInvalidCapacity instead.
//
// # Weights
//
// Unit, ByteLen and RuneLen cover the common cases. TokenWeigher counts
// BPE tokens with tiktoken, which is useful for batching prompts under a
// model's context budget.
//
// # Other helpers
//
// SubList picks elements by index, SliceMap keeps a subset of map keys and
// FindEntry returns the first map entry matching a predicate.
package collection
