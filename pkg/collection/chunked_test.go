package collection_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stuffkit/pkg/collection"
)

type item struct {
	weight int
}

func itemWeight(i item) int { return i.weight }

func items(weights ...int) []item {
	out := make([]item, len(weights))
	for i, w := range weights {
		out[i] = item{weight: w}
	}
	return out
}

func weightsOf(chunks [][]item) [][]int {
	out := make([][]int, len(chunks))
	for i, c := range chunks {
		out[i] = make([]int, len(c))
		for j, it := range c {
			out[i][j] = it.weight
		}
	}
	return out
}

func TestChunked(t *testing.T) {
	t.Parallel()

	t.Run("splits reference fixture into six chunks", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked(items(10, 30, 50, 40, 4, 5, 35, 25, 25, 25), 50, itemWeight)
		require.NoError(t, err)
		require.Len(t, chunks, 6)
		assert.Equal(t, [][]int{
			{10, 30},
			{50},
			{40, 4, 5},
			{35},
			{25, 25},
			{25},
		}, weightsOf(chunks))
	})

	t.Run("element equal to capacity fills a chunk on its own", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked(items(5, 10, 1), 10, itemWeight)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{5}, {10}, {1}}, weightsOf(chunks))
	})

	t.Run("zero weight elements pack with others", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked(items(0, 0, 10, 0, 0, 1, 0), 10, itemWeight)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 0, 10, 0, 0}, {1, 0}}, weightsOf(chunks))
	})

	t.Run("capacity near max int does not overflow", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked(items(math.MaxInt, 1), math.MaxInt, itemWeight)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{math.MaxInt}, {1}}, weightsOf(chunks))

		chunks, err = collection.Chunked(items(math.MaxInt-1, 1, 1), math.MaxInt, itemWeight)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{math.MaxInt - 1, 1}, {1}}, weightsOf(chunks))
	})

	t.Run("fails on element larger than capacity", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked(items(1, 2, 11, 3), 10, itemWeight)
		require.Error(t, err)
		assert.Nil(t, chunks)
		assert.True(t, errors.Is(err, collection.ErrElementTooLarge))

		var tooLarge *collection.ElementTooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, 2, tooLarge.Index)
		assert.Equal(t, 11, tooLarge.Weight)
		assert.Equal(t, 10, tooLarge.Capacity)
	})

	t.Run("non-positive capacity passes input through", func(t *testing.T) {
		t.Parallel()

		in := items(100, 200, 300)
		for _, capacity := range []int{0, -1} {
			chunks, err := collection.Chunked(in, capacity, itemWeight)
			require.NoError(t, err)
			require.Len(t, chunks, 1)
			assert.Equal(t, in, chunks[0])
		}
	})

	t.Run("empty input yields one empty chunk", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked([]item{}, 10, itemWeight)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Empty(t, chunks[0])

		chunks, err = collection.Chunked[item](nil, 10, itemWeight)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Empty(t, chunks[0])
	})

	t.Run("nil weight counts elements", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.Chunked([]string{"a", "b", "c", "d", "e"}, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
	})

	t.Run("chunks do not alias input", func(t *testing.T) {
		t.Parallel()

		in := []string{"a", "b", "c"}
		chunks, err := collection.Chunked(in, 2, collection.Unit[string])
		require.NoError(t, err)

		chunks[0][0] = "z"
		assert.Equal(t, "a", in[0])
	})
}

func TestChunkedStrict(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.ChunkedStrict(items(1, 2), 0, itemWeight)
		require.Error(t, err)
		assert.Nil(t, chunks)
		assert.True(t, errors.Is(err, collection.ErrInvalidCapacity))

		var invalid *collection.InvalidCapacityError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 0, invalid.Capacity)
	})

	t.Run("chunks like Chunked for positive capacity", func(t *testing.T) {
		t.Parallel()

		chunks, err := collection.ChunkedStrict(items(3, 3, 3), 6, itemWeight)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{3, 3}, {3}}, weightsOf(chunks))
	})
}

func TestChunkedSeq(t *testing.T) {
	t.Parallel()

	words := []string{"alpha", "be", "gamma", "delta", "e"}
	chunks, err := collection.ChunkedSeq(slices.Values(words), 7, collection.ByteLen)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"alpha", "be"}, {"gamma"}, {"delta", "e"}}, chunks)
}

// Random inputs checked against the partition, capacity and greedy laws.
func TestChunked_Laws(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 200; round++ {
		capacity := rng.IntN(40) + 1
		in := make([]item, rng.IntN(30))
		for i := range in {
			in[i] = item{weight: rng.IntN(capacity + 1)}
		}

		chunks, err := collection.Chunked(in, capacity, itemWeight)
		require.NoError(t, err)

		var flat []item
		for _, c := range chunks {
			flat = append(flat, c...)
		}
		if len(in) == 0 {
			assert.Empty(t, flat)
			continue
		}
		assert.Equal(t, in, flat, "concatenated chunks must reproduce the input")

		sums := make([]int, len(chunks))
		for i, c := range chunks {
			require.NotEmpty(t, c)
			for _, it := range c {
				sums[i] += it.weight
			}
			assert.LessOrEqual(t, sums[i], capacity)
		}

		for i := 1; i < len(chunks); i++ {
			// the first element of every later chunk did not fit the previous one
			assert.Greater(t, sums[i-1]+chunks[i][0].weight, capacity)
		}
	}
}
