// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mem

import (
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/mmix64/format"
)

// Store is a sparse byte-addressable memory over the full 64-bit address
// space. The zero address space reads as all zeros; only addresses that have
// been written consume storage.
type Store struct {
	Verbose bool // Set to enable verbose logging.

	cells map[uint64]uint8
}

// NewStore creates a new, empty memory store.
func NewStore() (st *Store) {
	st = &Store{
		cells: map[uint64]uint8{},
	}

	return
}

// ReadByte returns the byte stored at addr, or 0 if addr was never written.
func (st *Store) ReadByte(addr uint64) uint8 {
	return st.cells[addr]
}

// WriteByte stores value at addr, creating the cell if absent.
func (st *Store) WriteByte(addr uint64, value uint8) {
	if st.cells == nil {
		st.cells = map[uint64]uint8{}
	}

	st.cells[addr] = value
}

// Read performs an aligned read of the given width starting at addr. The
// address is rounded down to the width's natural boundary before reading.
// See Width.Decode for the signed and HIGHTETRA interpretations.
func (st *Store) Read(addr uint64, w Width, signed bool) uint64 {
	addr = w.AlignDown(addr)

	data := make([]byte, w.Size())
	for n := range data {
		data[n] = st.ReadByte(addr + uint64(n))
	}

	return w.Decode(data, signed)
}

// Write performs an aligned write of the given width starting at addr. The
// address is rounded down to the width's natural boundary, and the bytes of
// value are stored most significant first.
func (st *Store) Write(addr uint64, w Width, value uint64) {
	addr = w.AlignDown(addr)

	for n, b := range w.Encode(value) {
		st.WriteByte(addr+uint64(n), b)
	}

	if st.Verbose {
		log.Printf("mem: M[%v] <= %v (%v)", format.Hex(addr, 16), format.Hex(value, 16), w)
	}
}

// Used returns every address ever written, sorted ascending as unsigned
// values. Overwritten addresses appear once; never-written addresses do not
// appear at all.
func (st *Store) Used() []uint64 {
	return slices.Sorted(maps.Keys(st.cells))
}

// Clear removes every cell. All subsequent reads return zero.
func (st *Store) Clear() {
	clear(st.cells)
}

// String returns a hexdump of all 16-byte rows containing written cells.
func (st *Store) String() string {
	text := strings.Builder{}

	last := uint64(0)
	first := true
	for _, addr := range st.Used() {
		row := alignDown(addr, uint64(16))
		if !first && row == last {
			continue
		}

		if !first {
			text.WriteString("\n")
		}

		text.WriteString(format.Hex(row, 16) + " |")
		for n := range uint64(16) {
			text.WriteString(" " + format.Hex(uint64(st.ReadByte(row+n)), 2))
		}

		last = row
		first = false
	}

	return text.String()
}
