package mach

import (
	"github.com/ezrec/mmix64/translate"
)

var f = translate.From

// ErrRegisterRange reports a register index outside the fixed register file.
type ErrRegisterRange int

func (err ErrRegisterRange) Error() string {
	return f("register index %d out of range", int(err))
}

func (err ErrRegisterRange) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterRange)
	return
}

// ErrUnknownRegister reports a register designator that is neither a
// "$<index>" general register nor a special-register mnemonic.
type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register %q", string(err))
}

func (err ErrUnknownRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownRegister)
	return
}
