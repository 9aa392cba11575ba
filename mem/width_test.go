package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth_Size(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		w    Width
		size int
		name string
	}){
		{BYTE, 1, "byte"},
		{WYDE, 2, "wyde"},
		{TETRA, 4, "tetra"},
		{OCTA, 8, "octa"},
		{HIGHTETRA, 4, "high"},
	}

	for _, entry := range table {
		assert.Equal(entry.size, entry.w.Size(), entry.name)
		assert.Equal(entry.name, entry.w.String())

		w, ok := ParseWidth(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.w, w, entry.name)
	}

	_, ok := ParseWidth("nibble")
	assert.False(ok)
}

func TestWidth_AlignDown(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		w    Width
		addr uint64
		want uint64
	}){
		{"byte_any", BYTE, 1005, 1005},
		{"wyde", WYDE, 1005, 1004},
		{"tetra", TETRA, 1005, 1004},
		{"octa", OCTA, 1005, 1000},
		{"high_uses_tetra", HIGHTETRA, 1005, 1004},
		{"octa_aligned", OCTA, 1000, 1000},
		{"octa_top_of_space", OCTA, ^uint64(0), 0xFFFFFFFFFFFFFFF8},
		{"zero", OCTA, 0, 0},
	}

	for _, entry := range table {
		got := entry.w.AlignDown(entry.addr)
		assert.Equal(entry.want, got, entry.name)
		assert.LessOrEqual(got, entry.addr, entry.name)

		// Aligning twice changes nothing.
		assert.Equal(got, entry.w.AlignDown(got), entry.name)
		assert.Zero(got%uint64(entry.w.Size()), entry.name)
	}
}

func TestWidth_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		w      Width
		data   []byte
		signed bool
		want   uint64
	}){
		{"byte", BYTE, []byte{0xAB}, false, 0xAB},
		{"byte_signed", BYTE, []byte{0xAB}, true, 0xFFFFFFFFFFFFFFAB},
		{"byte_signed_positive", BYTE, []byte{0x7F}, true, 0x7F},
		{"wyde", WYDE, []byte{0x12, 0x34}, false, 0x1234},
		{"wyde_signed", WYDE, []byte{0x80, 0x00}, true, 0xFFFFFFFFFFFF8000},
		{"tetra", TETRA, []byte{0x89, 0xAB, 0xCD, 0xEF}, false, 0x89ABCDEF},
		{"tetra_signed", TETRA, []byte{0x89, 0xAB, 0xCD, 0xEF}, true, 0xFFFFFFFF89ABCDEF},
		{"octa", OCTA, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, false, 0x0123456789ABCDEF},
		{"octa_signed_noop", OCTA, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, true, 0xFFFFFFFFFFFFFFFF},
		{"high", HIGHTETRA, []byte{0x89, 0xAB, 0xCD, 0xEF}, false, 0x89ABCDEF00000000},
		{"high_ignores_signed", HIGHTETRA, []byte{0x89, 0xAB, 0xCD, 0xEF}, true, 0x89ABCDEF00000000},
	}

	for _, entry := range table {
		assert.Equal(entry.want, entry.w.Decode(entry.data, entry.signed), entry.name)
	}
}

func TestWidth_Encode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		w     Width
		value uint64
		want  []byte
	}){
		{"byte", BYTE, 0x0123456789ABCDEF, []byte{0xEF}},
		{"wyde", WYDE, 0x0123456789ABCDEF, []byte{0xCD, 0xEF}},
		{"tetra", TETRA, 0x0123456789ABCDEF, []byte{0x89, 0xAB, 0xCD, 0xEF}},
		{"octa", OCTA, 0x0123456789ABCDEF, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}},
		{"high", HIGHTETRA, 0x12345678ABCDEFFF, []byte{0x12, 0x34, 0x56, 0x78}},
		{"zero", OCTA, 0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, entry := range table {
		assert.Equal(entry.want, entry.w.Encode(entry.value), entry.name)
	}
}

func TestWidth_EncodeDecode(t *testing.T) {
	assert := assert.New(t)

	for _, w := range []Width{BYTE, WYDE, TETRA, OCTA} {
		value := uint64(0x0123456789ABCDEF)
		mask := ^uint64(0) >> (64 - 8*uint(w.Size()))
		assert.Equal(value&mask, w.Decode(w.Encode(value), false), w.String())
	}

	// The high tetra survives an encode/decode cycle; the low tetra is lost.
	value := uint64(0x0123456789ABCDEF)
	assert.Equal(value&0xFFFFFFFF00000000, HIGHTETRA.Decode(HIGHTETRA.Encode(value), false))
}
