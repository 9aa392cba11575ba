package mem

import (
	"golang.org/x/exp/constraints"
)

// Width is a memory access width.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	BYTE      = Width(0) // byte
	WYDE      = Width(1) // wyde
	TETRA     = Width(2) // tetra
	OCTA      = Width(3) // octa
	HIGHTETRA = Width(4) // high
)

// ParseWidth returns the access width with the given name.
func ParseWidth(name string) (w Width, ok bool) {
	for _, width := range []Width{BYTE, WYDE, TETRA, OCTA, HIGHTETRA} {
		if width.String() == name {
			return width, true
		}
	}

	return
}

// Size returns the number of bytes an access of this width spans in memory.
// HIGHTETRA spans a tetra.
func (w Width) Size() (size int) {
	switch w {
	case BYTE:
		size = 1
	case WYDE:
		size = 2
	case TETRA, HIGHTETRA:
		size = 4
	case OCTA:
		size = 8
	}

	return
}

// alignDown rounds a down to a multiple of b, which must be a power of two.
func alignDown[I constraints.Integer](a, b I) I {
	return a &^ (b - 1)
}

// AlignDown rounds addr down to the natural alignment boundary of the width.
// Any address is valid and the result is never greater than addr.
func (w Width) AlignDown(addr uint64) uint64 {
	return alignDown(addr, uint64(w.Size()))
}

// Decode combines Size() bytes of data, most significant byte first, into a
// 64-bit value.
//
// For HIGHTETRA the decoded tetra lands in bits 32-63, bits 0-31 are zero,
// and signed is ignored. Otherwise a signed decode sign-extends the value
// from Size()*8 bits to 64 bits.
func (w Width) Decode(data []byte, signed bool) (value uint64) {
	for _, b := range data[:w.Size()] {
		value = (value << 8) | uint64(b)
	}

	if w == HIGHTETRA {
		return value << 32
	}

	bits := uint(w.Size() * 8)
	if signed && bits < 64 && (value>>(bits-1))&1 == 1 {
		value |= ^uint64(0) << bits
	}

	return
}

// Encode emits the low Size()*8 bits of value, most significant byte first.
// For HIGHTETRA the upper 32 bits of value are emitted as a tetra.
func (w Width) Encode(value uint64) (data []byte) {
	if w == HIGHTETRA {
		value >>= 32
	}

	size := w.Size()
	data = make([]byte, size)
	for n := range size {
		data[n] = byte(value >> (8 * (size - n - 1)))
	}

	return
}
