package monitor

import (
	"github.com/ezrec/mmix64/translate"
)

var f = translate.From

// ErrCommand reports an unrecognized monitor command.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("unknown command %q", string(err))
}

// ErrUsage reports a command invoked with the wrong arguments. Its value is
// the expected usage line.
type ErrUsage string

func (err ErrUsage) Error() string {
	return f("usage: %v", string(err))
}

// ErrWidth reports an unrecognized access width name.
type ErrWidth string

func (err ErrWidth) Error() string {
	return f("unknown width %q", string(err))
}

// ErrExpression reports an operand that did not evaluate to an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("%v is not a valid expression", string(err))
}

// ErrScript indicates the location of an error in a monitor script.
type ErrScript struct {
	LineNo int
	Err    error
}

func (err *ErrScript) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
