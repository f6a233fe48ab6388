package vm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// opPrintHandler implements print <T>. With an empty operand stack it
// emits a blank line regardless of T (spec §4.5). Otherwise it pops one
// slot and formats it per T; T=ref dispatches further on the heap kind
// of the popped ID.
func opPrintHandler(m *VM, instr Instruction) error {
	if len(m.stack) == 0 {
		fmt.Fprintln(m.out)
		return nil
	}
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "print requires 1 argument since the stack is not empty; usage: print <type>")
	}
	val, err := m.pop(instr)
	if err != nil {
		return err
	}

	switch OpcodeHash(instr.Args[0]) {
	case typeUnt:
		fmt.Fprintln(m.out, val)
	case typeInt:
		fmt.Fprintln(m.out, int64(val))
	case typeFloat:
		fmt.Fprintln(m.out, popFloat(val))
	case typeChar:
		fmt.Fprintln(m.out, string(rune(byte(val))))
	case typeRef:
		return m.printRef(val, instr)
	default:
		return m.newErr(CategoryType, instr, "unknown print type %q", instr.Args[0])
	}
	return nil
}

func (m *VM) printRef(val uint64, instr Instruction) error {
	entry, err := m.heap.get(val)
	if err != nil {
		return m.newErr(CategoryState, instr, "print ref: %v", err)
	}

	switch entry.Kind {
	case KindNum:
		v, _ := m.heap.readU64(val, 0)
		fmt.Fprintln(m.out, v)
	case KindStr:
		s, _ := m.heap.ReadString(val)
		fmt.Fprintln(m.out, s)
	case KindArray:
		length, _ := m.heap.readU64(val, 0)
		items := make([]string, length)
		for i := uint64(0); i < length; i++ {
			v, _ := m.heap.readU64(val, int(i)+1)
			items[i] = strconv.FormatUint(v, 10)
		}
		fmt.Fprintf(m.out, "[%s]\n", strings.Join(items, ", "))
	case KindObject:
		return m.printObject(val, instr)
	default:
		return m.newErr(CategoryType, instr, "print ref: unknown heap kind")
	}
	return nil
}

func (m *VM) printObject(val uint64, instr Instruction) error {
	classHash, _ := m.heap.readU64(val, 0)
	fieldCount, _ := m.heap.readU64(val, 1)
	ci, ok := m.classes[classHash]
	if !ok {
		return m.newErr(CategoryLink, instr, "print ref: class for hash %d is not loaded", classHash)
	}

	parts := make([]string, fieldCount)
	for i := uint64(0); i < fieldCount; i++ {
		v, _ := m.heap.readU64(val, int(i)+2)
		name := fmt.Sprintf("f%d", i)
		if int(i) < len(ci.Fields) {
			name = ci.Fields[i]
		}
		parts[i] = fmt.Sprintf("%s: %d", name, v)
	}
	fmt.Fprintf(m.out, "%s { %s }\n", ci.Class, strings.Join(parts, ", "))
	return nil
}

// opInputHandler implements input <T>: reads one line from standard
// input and parses it per T.
func opInputHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "input requires 1 argument; usage: input <type>")
	}

	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return m.newErr(CategoryHost, instr, "input: %v", err)
	}
	line = strings.TrimRight(line, "\r\n")

	switch OpcodeHash(instr.Args[0]) {
	case typeUnt:
		v, perr := strconv.ParseUint(line, 10, 64)
		if perr != nil {
			return m.newErr(CategoryType, instr, "input: invalid unt %q: %v", line, perr)
		}
		m.push(v)
	case typeInt:
		v, perr := strconv.ParseInt(line, 10, 64)
		if perr != nil {
			return m.newErr(CategoryType, instr, "input: invalid int %q: %v", line, perr)
		}
		m.push(uint64(v))
	case typeFloat:
		v, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			return m.newErr(CategoryType, instr, "input: invalid float %q: %v", line, perr)
		}
		m.pushFloat(v)
	case typeStr:
		m.push(m.heap.NewStr(line))
	default:
		return m.newErr(CategoryType, instr, "unknown input type %q", instr.Args[0])
	}
	return nil
}
