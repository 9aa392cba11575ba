// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor implements an inspector command language over a machine.
//
// The monitor drives the machine only through its public accessors: it is a
// presentation tool, not part of the machine model. Every numeric operand is
// a starlark expression evaluated with the special-register mnemonics, "pc",
// and a reg(n) general-register function predeclared to the current machine
// state.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mmix64/format"
	"github.com/ezrec/mmix64/internal"
	"github.com/ezrec/mmix64/mach"
	"github.com/ezrec/mmix64/mem"
)

// Monitor executes inspector commands against a machine.
type Monitor struct {
	Machine *mach.Machine // Machine under inspection.
	Output  io.Writer     // Destination for command output.

	// Interactive reports command errors to Output and keeps going
	// instead of stopping the Run loop.
	Interactive bool
}

var _help = strings.Join([]string{
	"regs                          show registers",
	"mem                           show written memory",
	"get <reg>                     show a register ($n, mnemonic, or pc)",
	"set <reg> <expr>              set a register",
	"peek <width> <expr> [signed]  read memory (byte, wyde, tetra, octa, high)",
	"poke <width> <expr>, <expr>   write memory at address, value",
	"reset                         zero all registers and pc",
	"clear                         erase all memory",
	"help                          this text",
}, "\n")

// scalars iterates the machine-level named values visible to expressions.
func (mon *Monitor) scalars() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		yield("pc", mon.Machine.PC)
	}
}

// regBuiltin is the starlark reg(n) function: the value of general
// register $n.
func (mon *Monitor) regBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var index int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &index)
	if err != nil {
		return nil, err
	}

	value, err := mon.Machine.Reg(index)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(value), nil
}

// predeclared builds the expression environment from the current machine
// state.
func (mon *Monitor) predeclared() starlark.StringDict {
	pred := starlark.StringDict{}
	for name, value := range internal.IterSeq2Concat(mon.Machine.SpecialValues(), mon.scalars()) {
		pred[name] = starlark.MakeUint64(value)
	}
	pred["reg"] = starlark.NewBuiltin("reg", mon.regBuiltin)

	return pred
}

// Eval evaluates a numeric operand expression to a 64-bit value. Negative
// results are converted to their two's-complement bit pattern.
func (mon *Monitor) Eval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, mon.predeclared())
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	value, ok = st_int.Uint64()
	if !ok {
		st_int64, ok := st_int.Int64()
		if !ok {
			err = ErrExpression(expr)
			return
		}
		value = uint64(st_int64)
	}

	return
}

// getValue resolves a register designator, including the "pc"
// pseudo-register.
func (mon *Monitor) getValue(name string) (value uint64, err error) {
	if name == "pc" {
		value = mon.Machine.PC
		return
	}

	return mon.Machine.RegByName(name)
}

// setValue assigns a register designator, including the "pc"
// pseudo-register.
func (mon *Monitor) setValue(name string, value uint64) (err error) {
	if name == "pc" {
		mon.Machine.PC = value
		return
	}

	return mon.Machine.SetRegByName(name, value)
}

func (mon *Monitor) cmdGet(fields []string) (err error) {
	if len(fields) != 2 {
		err = ErrUsage("get <reg>")
		return
	}

	value, err := mon.getValue(fields[1])
	if err != nil {
		return
	}

	fmt.Fprintf(mon.Output, "%v: %v (%v)\n", fields[1], format.Hex(value, 16), format.Signed(value))

	return
}

func (mon *Monitor) cmdSet(fields []string) (err error) {
	if len(fields) < 3 {
		err = ErrUsage("set <reg> <expr>")
		return
	}

	value, err := mon.Eval(strings.Join(fields[2:], " "))
	if err != nil {
		return
	}

	return mon.setValue(fields[1], value)
}

func (mon *Monitor) cmdPeek(fields []string) (err error) {
	signed := false
	if len(fields) > 3 && fields[len(fields)-1] == "signed" {
		signed = true
		fields = fields[:len(fields)-1]
	}
	if len(fields) < 3 {
		err = ErrUsage("peek <width> <expr> [signed]")
		return
	}

	w, ok := mem.ParseWidth(fields[1])
	if !ok {
		err = ErrWidth(fields[1])
		return
	}

	addr, err := mon.Eval(strings.Join(fields[2:], " "))
	if err != nil {
		return
	}

	value := mon.Machine.Mem.Read(addr, w, signed)

	digits := w.Size() * 2
	if w == mem.HIGHTETRA || signed {
		digits = 16
	}

	fmt.Fprintf(mon.Output, "M[%v].%v: %v (%v)\n",
		format.Hex(w.AlignDown(addr), 16), w, format.Hex(value, digits), format.Signed(value))

	return
}

func (mon *Monitor) cmdPoke(fields []string) (err error) {
	if len(fields) < 3 {
		err = ErrUsage("poke <width> <expr>, <expr>")
		return
	}

	w, ok := mem.ParseWidth(fields[1])
	if !ok {
		err = ErrWidth(fields[1])
		return
	}

	operands := strings.Join(fields[2:], " ")
	exprs := strings.SplitN(operands, ",", 2)
	if len(exprs) != 2 {
		err = ErrUsage("poke <width> <expr>, <expr>")
		return
	}

	addr, err := mon.Eval(exprs[0])
	if err != nil {
		return
	}

	value, err := mon.Eval(exprs[1])
	if err != nil {
		return
	}

	mon.Machine.Mem.Write(addr, w, value)

	return
}

// Exec executes one monitor command line. Blank lines and "#" comments are
// ignored.
func (mon *Monitor) Exec(line string) (err error) {
	if n := strings.Index(line, "#"); n >= 0 {
		line = line[:n]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "help":
		fmt.Fprintln(mon.Output, _help)
	case "regs":
		fmt.Fprint(mon.Output, mon.Machine.String())
	case "mem":
		fmt.Fprintln(mon.Output, mon.Machine.Mem.String())
	case "get":
		err = mon.cmdGet(fields)
	case "set":
		err = mon.cmdSet(fields)
	case "peek":
		err = mon.cmdPeek(fields)
	case "poke":
		err = mon.cmdPoke(fields)
	case "reset":
		mon.Machine.Reset()
	case "clear":
		mon.Machine.Mem.Clear()
	default:
		err = ErrCommand(fields[0])
	}

	return
}

// Run executes monitor commands from r until EOF. In Interactive mode a
// failed command is reported to Output and the loop continues; otherwise the
// first error stops the run, wrapped with its line number.
func (mon *Monitor) Run(r io.Reader) (err error) {
	scanner := bufio.NewScanner(r)

	lineno := 0
	for scanner.Scan() {
		lineno++

		err = mon.Exec(scanner.Text())
		if err == nil {
			continue
		}

		if !mon.Interactive {
			err = &ErrScript{LineNo: lineno, Err: err}
			return
		}

		fmt.Fprintf(mon.Output, "error: %v\n", err)
		err = nil
	}

	err = scanner.Err()

	return
}
