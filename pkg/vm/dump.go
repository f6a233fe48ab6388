package vm

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// dumpHeapEntry is the go-spew-friendly projection of a HeapEntry: the
// decoded payload instead of the raw byte buffer, so the dump in spec
// §6.3 reads as values rather than hex.
type dumpHeapEntry struct {
	ID      uint64
	Kind    string
	Payload interface{}
}

type dumpFrame struct {
	Index   int
	Vars    map[string]uint64
	This    uint64
	HasThis bool
}

type dumpState struct {
	Elapsed   time.Duration
	Stack     []uint64
	CallStack []int
	Frames    []dumpFrame
	Heap      []dumpHeapEntry
	Classes   []string
}

// DumpState renders a snapshot of the operand stack, call stack, frame
// stack, heap, and loaded classes to w. It is invoked on halt (spec
// §6.3) and is otherwise side-effect free, so tests can call it directly
// against a bytes.Buffer.
func (m *VM) DumpState(w io.Writer) {
	state := dumpState{
		Elapsed:   time.Since(m.startedAt),
		Stack:     append([]uint64(nil), m.stack...),
		CallStack: append([]int(nil), m.callStack...),
	}

	for i, f := range m.frames {
		state.Frames = append(state.Frames, dumpFrame{
			Index:   i,
			Vars:    f.vars,
			This:    f.this,
			HasThis: f.hasThis,
		})
	}

	for _, id := range m.heap.IDs() {
		e, _ := m.heap.get(id)
		state.Heap = append(state.Heap, dumpHeapEntry{
			ID:      id,
			Kind:    e.Kind.String(),
			Payload: m.describePayload(id, e),
		})
	}

	for hash, ci := range m.classes {
		state.Classes = append(state.Classes, fmt.Sprintf("%s (hash=%d, fields=%v)", ci.Class, hash, ci.Fields))
	}
	sort.Strings(state.Classes)

	fmt.Fprintf(w, "lvm: halted after %s\n", state.Elapsed)
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, SortKeys: true}
	cfg.Fdump(w, state)
}

// describePayload decodes a heap entry's bytes into a printable Go value
// per its Kind, so the dump shows "hello" instead of a byte slice.
func (m *VM) describePayload(id uint64, e *HeapEntry) interface{} {
	switch e.Kind {
	case KindNum:
		v, _ := m.heap.readU64(id, 0)
		return v
	case KindStr:
		s, _ := m.heap.ReadString(id)
		return s
	case KindArray:
		length, _ := m.heap.readU64(id, 0)
		items := make([]uint64, length)
		for i := uint64(0); i < length; i++ {
			items[i], _ = m.heap.readU64(id, int(i)+1)
		}
		return items
	case KindObject:
		classHash, _ := m.heap.readU64(id, 0)
		fieldCount, _ := m.heap.readU64(id, 1)
		fields := make([]uint64, fieldCount)
		for i := uint64(0); i < fieldCount; i++ {
			fields[i], _ = m.heap.readU64(id, int(i)+2)
		}
		return fmt.Sprintf("class=%d fields=%v", classHash, fields)
	default:
		return e.Data
	}
}
