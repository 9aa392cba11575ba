// Package format renders 64-bit machine words for display.
//
// These helpers are pure: they interpret a word's bit pattern without
// touching any machine state.
package format

import (
	"fmt"
	"strconv"
)

// Hex renders value as uppercase hexadecimal, left-padded with zeros to at
// least digits characters. Values wider than digits are never truncated.
func Hex(value uint64, digits int) string {
	return fmt.Sprintf("%0*X", digits, value)
}

// Signed renders the two's-complement interpretation of value as a signed
// decimal string.
func Signed(value uint64) string {
	return strconv.FormatInt(int64(value), 10)
}
