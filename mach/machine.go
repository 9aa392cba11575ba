// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mach

import (
	"fmt"
	"iter"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/mmix64/format"
	"github.com/ezrec/mmix64/mem"
)

// GENERAL_COUNT is the number of general-purpose registers.
const GENERAL_COUNT = 256

// Machine is the complete state of one mmix64 machine: memory, general and
// special register files, and the program counter.
//
// A Machine provides no internal synchronization; a caller that shares one
// between goroutines must serialize access itself.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Mem *mem.Store // Byte-addressable memory.
	PC  uint64     // Program counter.

	general [GENERAL_COUNT]uint64
	special [SPECIAL_COUNT]uint64
}

// NewMachine creates a new machine with empty memory and all registers zero.
func NewMachine() (m *Machine) {
	m = &Machine{
		Mem: mem.NewStore(),
	}

	return
}

// Reg returns the value of general register $index.
func (m *Machine) Reg(index int) (value uint64, err error) {
	if index < 0 || index >= GENERAL_COUNT {
		err = ErrRegisterRange(index)
		return
	}

	value = m.general[index]

	return
}

// SetReg sets general register $index. Registers hold exactly 64 bits, so
// arithmetic carries beyond bit 63 wrap rather than fail.
func (m *Machine) SetReg(index int, value uint64) (err error) {
	if index < 0 || index >= GENERAL_COUNT {
		err = ErrRegisterRange(index)
		return
	}

	m.general[index] = value

	if m.Verbose {
		log.Printf("mach: $%d <= %v", index, format.Hex(value, 16))
	}

	return
}

// Special returns the value of a special register slot.
func (m *Machine) Special(sp Special) (value uint64, err error) {
	if sp < 0 || sp >= SPECIAL_COUNT {
		err = ErrRegisterRange(int(sp))
		return
	}

	value = m.special[sp]

	return
}

// SetSpecial sets a special register slot, with the same 64-bit wraparound
// as SetReg.
func (m *Machine) SetSpecial(sp Special, value uint64) (err error) {
	if sp < 0 || sp >= SPECIAL_COUNT {
		err = ErrRegisterRange(int(sp))
		return
	}

	m.special[sp] = value

	if m.Verbose {
		log.Printf("mach: %v <= %v", sp, format.Hex(value, 16))
	}

	return
}

// regByName resolves a register designator to its file and index.
func (m *Machine) regByName(name string) (general bool, index int, err error) {
	if rest, ok := strings.CutPrefix(name, "$"); ok {
		index, err = strconv.Atoi(rest)
		if err != nil || index < 0 || index >= GENERAL_COUNT {
			err = ErrUnknownRegister(name)
			return
		}
		general = true
		return
	}

	sp, ok := SpecialByName(name)
	if !ok {
		err = ErrUnknownRegister(name)
		return
	}
	index = int(sp)

	return
}

// RegByName returns the value of the register designated by either a
// "$<index>" decimal general-register name or a special-register mnemonic.
func (m *Machine) RegByName(name string) (value uint64, err error) {
	general, index, err := m.regByName(name)
	if err != nil {
		return
	}

	if general {
		return m.Reg(index)
	}

	return m.Special(Special(index))
}

// SetRegByName sets the register designated by name. See RegByName.
func (m *Machine) SetRegByName(name string, value uint64) (err error) {
	general, index, err := m.regByName(name)
	if err != nil {
		return
	}

	if general {
		return m.SetReg(index, value)
	}

	return m.SetSpecial(Special(index), value)
}

// SpecialValues iterates the special-register file as mnemonic/value pairs,
// in slot order.
func (m *Machine) SpecialValues() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for sp, value := range m.special {
			if !yield(Special(sp).String(), value) {
				return
			}
		}
	}
}

// Reset sets every general and special register and the program counter to
// zero. Memory is untouched; use Mem.Clear for that.
func (m *Machine) Reset() {
	clear(m.general[:])
	clear(m.special[:])
	m.PC = 0

	if m.Verbose {
		log.Printf("mach: reset")
	}
}

// String returns the machine register state as a string. Only nonzero
// general registers are listed.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("% 5s: %v\n", "pc", format.Hex(m.PC, 16))

	for n, value := range m.general {
		if value == 0 {
			continue
		}
		text += fmt.Sprintf("% 5s: %v\n", fmt.Sprintf("$%d", n), format.Hex(value, 16))
	}

	for name, value := range m.SpecialValues() {
		if value == 0 {
			continue
		}
		text += fmt.Sprintf("% 5s: %v\n", name, format.Hex(value, 16))
	}

	return
}
