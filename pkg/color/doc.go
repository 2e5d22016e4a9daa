// Package color parses the color notations found in configuration and user
// input into packed ARGB values.
//
// Accepted forms are "#RRGGBB", "0xRRGGBB" (hex digits in either case) and
// "rgb(r,g,b)" with decimal channels from 0 to 255 and no spaces. Parse is
// lenient and returns White for anything else; ParseStrict reports
// ErrInvalidColor instead.
//
//	c := color.Parse("rgb(255,128,0)")
//	c.Hex() // "#FF8000"
package color
