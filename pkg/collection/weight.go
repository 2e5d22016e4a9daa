package collection

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/dmitrymomot/stuffkit/pkg/parse"
)

// DefaultEncoding is the BPE encoding used by TokenWeigher when none is given.
const DefaultEncoding = "cl100k_base"

var (
	// ErrUnknownEncoding is returned when tiktoken cannot load the requested encoding.
	ErrUnknownEncoding = errors.New("unknown token encoding")

	// ErrUnknownMeasure is returned for a weight measure name that is not in Measures.
	ErrUnknownMeasure = errors.New("unknown weight measure")
)

// Unit weighs every element as 1, turning Chunked into fixed-size batching.
func Unit[T any](T) int { return 1 }

// ByteLen weighs a string by its length in bytes.
func ByteLen(s string) int { return len(s) }

// RuneLen weighs a string by the number of runes it contains.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// TokenWeigher returns a weight function counting BPE tokens in the given
// encoding (DefaultEncoding when empty).
// tiktoken may download the encoding ranks on first use.
func TokenWeigher(encoding string) (WeightFunc[string], error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, errors.Join(ErrUnknownEncoding, err)
	}

	return func(s string) int {
		if s == "" {
			return 0
		}
		return len(enc.Encode(s, nil, nil))
	}, nil
}

// Measure names a built-in way of weighing strings.
type Measure string

const (
	MeasureUnit   Measure = "unit"
	MeasureBytes  Measure = "bytes"
	MeasureRunes  Measure = "runes"
	MeasureTokens Measure = "tokens"
)

// Measures lists every Measure in display order.
var Measures = []Measure{MeasureUnit, MeasureBytes, MeasureRunes, MeasureTokens}

// ParseMeasure resolves a measure name case-insensitively. An empty name is MeasureUnit.
func ParseMeasure(name string) (Measure, error) {
	if name == "" {
		return MeasureUnit, nil
	}
	m, err := parse.Enum(name, Measures, true)
	if err != nil {
		return "", errors.Join(ErrUnknownMeasure, err)
	}
	return m, nil
}

// StringWeigher returns the weight function for m. encoding only applies to
// MeasureTokens.
func StringWeigher(m Measure, encoding string) (WeightFunc[string], error) {
	switch m {
	case MeasureUnit, "":
		return Unit[string], nil
	case MeasureBytes:
		return ByteLen, nil
	case MeasureRunes:
		return RuneLen, nil
	case MeasureTokens:
		return TokenWeigher(encoding)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMeasure, string(m))
}
