package collection_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stuffkit/pkg/collection"
)

func TestSubList(t *testing.T) {
	t.Parallel()

	letters := []string{"a", "b", "c", "d"}

	t.Run("picks elements in index order", func(t *testing.T) {
		got, err := collection.SubList(letters, 3, 0, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "a", "d"}, got)
	})

	t.Run("no indexes yields empty slice", func(t *testing.T) {
		got, err := collection.SubList(letters)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("out of range index", func(t *testing.T) {
		_, err := collection.SubList(letters, 1, 4)
		require.Error(t, err)
		assert.True(t, errors.Is(err, collection.ErrIndexOutOfRange))
		assert.Contains(t, err.Error(), "4")

		_, err = collection.SubList(letters, -1)
		assert.True(t, errors.Is(err, collection.ErrIndexOutOfRange))
	})
}

func TestSliceMap(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	assert.Equal(t, map[string]int{"a": 1, "c": 3}, collection.SliceMap(m, "a", "c", "x"))
	assert.Empty(t, collection.SliceMap(m))
}

func TestFindEntry(t *testing.T) {
	t.Parallel()

	m := map[string]string{"b": "beta", "a": "alpha", "g": "gamma"}

	k, v, ok := collection.FindEntry(m, func(_ string, v string) bool {
		return strings.HasSuffix(v, "a")
	})
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, "alpha", v)

	_, _, ok = collection.FindEntry(m, func(k string, _ string) bool { return k == "z" })
	assert.False(t, ok)
}

func TestWeights(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, collection.Unit(struct{}{}))
	assert.Equal(t, 6, collection.ByteLen("héllo"))
	assert.Equal(t, 5, collection.RuneLen("héllo"))
}

func TestParseMeasure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want collection.Measure
		err  bool
	}{
		{"", collection.MeasureUnit, false},
		{"unit", collection.MeasureUnit, false},
		{"BYTES", collection.MeasureBytes, false},
		{"Runes", collection.MeasureRunes, false},
		{"tokens", collection.MeasureTokens, false},
		{"words", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := collection.ParseMeasure(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, collection.ErrUnknownMeasure)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringWeigher(t *testing.T) {
	t.Parallel()

	for m, want := range map[collection.Measure]int{
		collection.MeasureUnit:  1,
		collection.MeasureBytes: 6,
		collection.MeasureRunes: 5,
	} {
		w, err := collection.StringWeigher(m, "")
		require.NoError(t, err)
		assert.Equal(t, want, w("héllo"), string(m))
	}

	_, err := collection.StringWeigher("words", "")
	assert.ErrorIs(t, err, collection.ErrUnknownMeasure)
}
