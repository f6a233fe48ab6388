package vm

import (
	"bufio"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// VM is the LVM execution engine: the operand stack, call-return stack,
// frame stack, instruction pointer, and the heap allocator, all driven
// by the fetch-decode-execute loop in Step.
type VM struct {
	path string

	instructions   []Instruction
	labels         map[string]int
	classPositions map[string]int
	classes        map[uint64]*ClassInfo

	heap      *Heap
	stack     []uint64
	frames    []Frame
	callStack []int
	ip        int

	startedAt time.Time

	out     io.Writer
	in      *bufio.Reader
	dumpOut io.Writer
	log     *logrus.Logger
	trace   bool
}

// New builds a VM ready to load a program. out is where print writes
// program output; in is where input reads lines from. log, if nil,
// defaults to a logrus.Logger with output discarded (library callers
// that don't care about tracing needn't configure one).
func New(out io.Writer, in io.Reader, log *logrus.Logger) *VM {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &VM{
		labels:         make(map[string]int),
		classPositions: make(map[string]int),
		classes:        make(map[uint64]*ClassInfo),
		heap:           newHeap(),
		frames:         []Frame{newFrame()},
		out:            out,
		in:             bufio.NewReader(in),
		dumpOut:        out,
		log:            log,
	}
}

// SetTrace enables per-instruction debug logging.
func (m *VM) SetTrace(on bool) { m.trace = on }

// SetDumpWriter overrides where the halt diagnostic dump (spec §6.3) is
// written. Defaults to the same writer as print's output; pass
// io.Discard to suppress it (the --no-dump CLI flag).
func (m *VM) SetDumpWriter(w io.Writer) { m.dumpOut = w }

// Load tokenizes source, pre-scans it for labels/classes, and readies
// the VM to Run. path is used only for diagnostics.
func (m *VM) Load(source, path string) error {
	instructions, err := Load(source, path)
	if err != nil {
		return err
	}
	m.path = path
	m.instructions = instructions
	return m.prescan()
}

// Run starts execution at labels["main"]+1 and steps until the
// instruction pointer runs off the end of the program (normal
// termination, returns nil) or halt is executed (returns *ErrHalt) or a
// structural violation occurs (returns *VMError).
func (m *VM) Run() error {
	start, ok := m.labels["main"]
	if !ok {
		return &VMError{Category: CategoryLink, Path: m.path, Line: 0, Raw: "", Err: errNoMain}
	}
	m.ip = start + 1
	m.startedAt = time.Now()

	for m.ip < len(m.instructions) {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes exactly one instruction, advancing ip first (so control
// flow opcodes can overwrite it) per spec §4.5.
func (m *VM) Step() error {
	instr := m.instructions[m.ip]
	m.ip++

	if m.trace {
		m.log.WithFields(logrus.Fields{
			"ip":   m.ip - 1,
			"line": instr.Line,
			"raw":  instr.Raw,
		}).Debug("step")
	}

	if handler, ok := dispatch[instr.Op]; ok {
		return handler(m, instr)
	}
	return m.newErr(CategoryLink, instr, "unknown instruction")
}

// --- operand stack helpers ---

func (m *VM) push(v uint64) { m.stack = append(m.stack, v) }

func (m *VM) pop(instr Instruction) (uint64, error) {
	n := len(m.stack)
	if n == 0 {
		return 0, m.newErr(CategoryState, instr, "no elements in stack")
	}
	v := m.stack[n-1]
	m.stack = m.stack[:n-1]
	return v, nil
}

func (m *VM) curFrame() *Frame { return &m.frames[len(m.frames)-1] }

// pushCall pushes a return address and a fresh frame, optionally bound
// to a this-reference (used by new and call_method).
func (m *VM) pushCall(retIP int, this uint64, hasThis bool) {
	m.callStack = append(m.callStack, retIP)
	f := newFrame()
	f.this = this
	f.hasThis = hasThis
	m.frames = append(m.frames, f)
}

func (m *VM) jumpToLabel(name string, instr Instruction) error {
	idx, ok := m.labels[name]
	if !ok {
		return m.newErr(CategoryLink, instr, "label %q is not found", name)
	}
	m.ip = idx + 1
	return nil
}
