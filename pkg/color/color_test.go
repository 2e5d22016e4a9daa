package color_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stuffkit/pkg/color"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.Color
	}{
		{"#FF8000", 0xFFFF8000},
		{"#ff8000", 0xFFFF8000},
		{"0x00FF7f", 0xFF00FF7F},
		{"0X123456", 0xFF123456},
		{"rgb(255,128,0)", 0xFFFF8000},
		{"rgb(0,0,0)", color.Black},
		{"rgb(256,0,0)", color.White},
		{"rgb(1, 2, 3)", color.White},
		{"#FFF", color.White},
		{"red", color.White},
		{"", color.White},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, color.Parse(tt.in))
		})
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	c, err := color.ParseStrict("#0A0B0C")
	require.NoError(t, err)
	r, g, b := c.Channels()
	assert.Equal(t, []uint8{0x0A, 0x0B, 0x0C}, []uint8{r, g, b})
	assert.Equal(t, uint8(0xFF), c.Alpha())

	for _, in := range []string{"rgb(300,0,0)", "#GGGGGG", "blue"} {
		_, err := color.ParseStrict(in)
		assert.True(t, errors.Is(err, color.ErrInvalidColor), in)
	}
}

func TestColor_Hex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#FF8000", color.RGB(255, 128, 0).Hex())
	assert.Equal(t, "#000000", color.Black.Hex())
	assert.Equal(t, "#FFFFFF", color.White.String())
	assert.Equal(t, "#123456", color.Color(0x00123456).Hex())
}
