package vm

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run loads and executes src, returning captured stdout (program output
// only; the halt dump is discarded) and the terminal error (nil on normal
// run-off, *ErrHalt on halt, *VMError on a fatal condition).
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	m := New(&out, strings.NewReader(""), nil)
	m.SetDumpWriter(io.Discard)
	require.NoError(t, m.Load(src, "t.lvm"))
	err := m.Run()
	return out.String(), err
}

func TestScenarioHello(t *testing.T) {
	out, err := run(t, `
label main
push_const str "hi"
print ref
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, 0, halt.Code)
	require.Equal(t, "hi\n", out)
}

func TestScenarioSignedArithmetic(t *testing.T) {
	out, err := run(t, `
label main
push_const int 7
push_const int -3
i_add
print int
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "4\n", out)
}

func TestScenarioCountedLoop(t *testing.T) {
	out, err := run(t, `
label main
push_const int 0
store_var i
label L
load_var i
push_const int 3
i_lt
jump_if_false E
load_var i
i_inc
store_var i
jump L
label E
load_var i
print int
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "3\n", out)
}

func TestScenarioStringConcat(t *testing.T) {
	out, err := run(t, `
label main
push_const str "foo"
push_const str "bar"
str_add
print ref
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "foobar\n", out)
}

func TestScenarioIndirectCall(t *testing.T) {
	out, err := run(t, `
label F
push_const str "ok"
print ref
ret
label main
push_const lambda F
call_dynamic
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "ok\n", out)
}

func TestScenarioObjectFieldAndMethod(t *testing.T) {
	out, err := run(t, `
struct P: x
method show P_show
end_class

label P_show
load_this
load_field x
print int
ret

label P_init
store_var self
load_var self
ret

label main
new P P_init
store_var p
push_const int 42
load_var p
set_field x
load_var p
call_method show
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "42\n", out)
}

// TestStackDisciplineAcrossCallReturn asserts invariant 5 from spec §8: a
// balanced call body (it pops everything it pushes internally, leaving
// exactly the frame/call bookkeeping to call/ret) returns the operand
// stack and frame stack to their pre-call depth.
func TestStackDisciplineAcrossCallReturn(t *testing.T) {
	var out bytes.Buffer
	m := New(&out, strings.NewReader(""), nil)
	src := `
label F
push_const int 1
push_const int 1
i_add
store_var tmp
ret
label main
push_const int 9
call F
halt 0
`
	require.NoError(t, m.Load(src, "t.lvm"))

	start, ok := m.labels["main"]
	require.True(t, ok)
	m.ip = start + 1
	preStack, preFrames := len(m.stack), len(m.frames)

	require.NoError(t, m.Step()) // push_const int 9
	require.NoError(t, m.Step()) // call F
	for m.instructions[m.ip].Op != opRet {
		require.NoError(t, m.Step())
	}
	require.NoError(t, m.Step()) // ret

	require.Equal(t, preStack+1, len(m.stack)) // the 9 pushed before call
	require.Equal(t, preFrames, len(m.frames))
}

func TestCastClosureIntUnt(t *testing.T) {
	out, err := run(t, `
label main
push_const int -5
cast int unt
cast unt int
print int
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "-5\n", out)
}

func TestCastClosureIntFloat(t *testing.T) {
	out, err := run(t, `
label main
push_const int 100
cast int float
cast float int
print int
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "100\n", out)
}

func TestArrayBoundsEdgeCases(t *testing.T) {
	_, err := run(t, `
label main
push_const int 3
new_array
store_var a
push_const int 99
push_const int 2
load_var a
array_set
push_const int 99
push_const int 3
load_var a
array_set
halt 0
`)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryBounds, vmErr.Category)
}

func TestArraySetGetAtLastValidIndex(t *testing.T) {
	out, err := run(t, `
label main
push_const int 3
new_array
store_var a
push_const int 7
push_const int 2
load_var a
array_set
push_const int 2
load_var a
array_get
print unt
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "7\n", out)
}

func TestDivisionByZeroIsHostErrorNotPanic(t *testing.T) {
	_, err := run(t, `
label main
push_const int 1
push_const int 0
i_div
halt 0
`)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryHost, vmErr.Category)
}

func TestUndefinedVariableIsStateError(t *testing.T) {
	_, err := run(t, `
label main
load_var nope
halt 0
`)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryState, vmErr.Category)
}

func TestEmptyStackPopIsStateError(t *testing.T) {
	_, err := run(t, `
label main
i_add
halt 0
`)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryState, vmErr.Category)
}

func TestMissingMainIsLinkError(t *testing.T) {
	var out bytes.Buffer
	m := New(&out, strings.NewReader(""), nil)
	require.NoError(t, m.Load("label other\nhalt\n", "t.lvm"))
	err := m.Run()
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryLink, vmErr.Category)
}

func TestBooleanCanonicalRepresentation(t *testing.T) {
	out, err := run(t, `
label main
push_const int 1
push_const int 1
i_eq
print unt
push_const int 1
push_const int 0
i_eq
print unt
halt 0
`)
	var halt *ErrHalt
	require.ErrorAs(t, err, &halt)
	require.Equal(t, "1\n0\n", out)
}
