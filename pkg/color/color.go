package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	Black Color = 0xFF000000
	White Color = 0xFFFFFFFF
)

var (
	hexRegex   = regexp.MustCompile(`(?i)^#[a-f0-9]{6}$`)
	zeroXRegex = regexp.MustCompile(`(?i)^0x[a-f0-9]{6}$`)
	rgbRegex   = regexp.MustCompile(`^rgb\((\d{1,3}),(\d{1,3}),(\d{1,3})\)$`)
)

// RGB returns an opaque color from its channels.
func RGB(r, g, b uint8) Color {
	return 0xFF000000 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Parse parses s, falling back to White when s is not a supported notation.
func Parse(s string) Color {
	c, err := ParseStrict(s)
	if err != nil {
		return White
	}
	return c
}

// ParseStrict parses s or returns ErrInvalidColor.
func ParseStrict(s string) (Color, error) {
	switch {
	case hexRegex.MatchString(s):
		return fromHex(s)
	case zeroXRegex.MatchString(s):
		return fromHex("#" + s[2:])
	case rgbRegex.MatchString(s):
		m := rgbRegex.FindStringSubmatch(s)
		var channels [3]uint8
		for i, raw := range m[1:] {
			v, err := strconv.ParseUint(raw, 10, 8)
			if err != nil {
				return 0, fmt.Errorf("%w: channel %q out of range in %q", ErrInvalidColor, raw, s)
			}
			channels[i] = uint8(v)
		}
		return RGB(channels[0], channels[1], channels[2]), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

func fromHex(s string) (Color, error) {
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Hex formats the color as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

func (c Color) String() string {
	return c.Hex()
}
