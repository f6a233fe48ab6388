package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

var errNoMain = fmt.Errorf("no main label found")

// Category classifies a fatal VM error per the taxonomy of spec §7.
type Category int

const (
	CategoryParse Category = iota
	CategoryLink
	CategoryType
	CategoryBounds
	CategoryState
	CategoryHost
)

func (c Category) String() string {
	switch c {
	case CategoryParse:
		return "Parse"
	case CategoryLink:
		return "Link"
	case CategoryType:
		return "Type"
	case CategoryBounds:
		return "Bounds"
	case CategoryState:
		return "State"
	case CategoryHost:
		return "Host"
	default:
		return "Unknown"
	}
}

// VMError is the single fatal error type the VM ever returns. Every
// structural violation described in spec §7 (unknown opcode, wrong
// arity, undefined label/class/variable/field, wrong heap kind,
// out-of-bounds access, bad cast pair, empty-stack pop, ...) surfaces as
// one of these. Nothing is recovered locally; VMError propagates to the
// caller of Run/Step, which is expected to report it and terminate.
type VMError struct {
	Category Category
	Path     string
	Line     int
	Raw      string
	Err      error
}

func (e *VMError) Error() string {
	return fmt.Sprintf("%s:%d: [%s] %s\n    %s", e.Path, e.Line, e.Category, e.Err, e.Raw)
}

func (e *VMError) Unwrap() error { return e.Err }

// newErr builds a VMError wrapping cause with a stack trace via
// github.com/pkg/errors, keyed to the instruction currently executing.
func (m *VM) newErr(cat Category, instr Instruction, format string, args ...interface{}) *VMError {
	cause := errors.Wrapf(fmt.Errorf(format, args...), "lvm")
	return &VMError{
		Category: cat,
		Path:     m.path,
		Line:     instr.Line,
		Raw:      instr.Raw,
		Err:      cause,
	}
}

// ErrHalt is returned by Run when the program executes `halt`. It is not
// a VMError: it is the VM's normal, in-band termination signal and
// carries the process exit code the caller should use.
type ErrHalt struct {
	Code int
}

func (e *ErrHalt) Error() string {
	return fmt.Sprintf("halt(%d)", e.Code)
}
