package parse

import "strconv"

// Hex formats v as lowercase hexadecimal. Negative values are rendered as
// their 32-bit two's complement, so Hex(-1) is "ffffffff".
func Hex(v int32) string {
	return strconv.FormatUint(uint64(uint32(v)), 16)
}

// Hex0x is Hex with a "0x" prefix.
func Hex0x(v int32) string {
	return "0x" + Hex(v)
}
