package vm

func (m *VM) requireKind(id uint64, want Kind, instr Instruction, what string) (*HeapEntry, error) {
	e, err := m.heap.get(id)
	if err != nil {
		return nil, m.newErr(CategoryState, instr, "%s: %v", what, err)
	}
	if e.Kind != want {
		return nil, m.newErr(CategoryType, instr, "%s: expected %s, got %s", what, want, e.Kind)
	}
	return e, nil
}

func opStrAddHandler(m *VM, instr Instruction) error {
	a, b, err := m.popTwo(instr)
	if err != nil {
		return err
	}
	as, err := m.heap.ReadString(a)
	if err != nil {
		return m.newErr(CategoryState, instr, "str_add: %v", err)
	}
	bs, err := m.heap.ReadString(b)
	if err != nil {
		return m.newErr(CategoryState, instr, "str_add: %v", err)
	}
	m.push(m.heap.NewStr(as + bs))
	return nil
}

// opStrSetHandler mutates a string in place at a byte index. This
// breaks the "strings are immutable" expectation clone relies on: a
// clone of a string that is later str_set through the original sees no
// change (clone deep-copies), but two variables holding the same heap
// ID will observe each other's mutation. Spec §9 open question (b).
func opStrSetHandler(m *VM, instr Instruction) error {
	sym, err := m.pop(instr)
	if err != nil {
		return err
	}
	if sym > 0xff {
		return m.newErr(CategoryType, instr, "str_set: value %d exceeds a byte", sym)
	}
	idx64, err := m.pop(instr)
	if err != nil {
		return err
	}
	s, err := m.pop(instr)
	if err != nil {
		return err
	}
	e, err := m.requireKind(s, KindStr, instr, "str_set")
	if err != nil {
		return err
	}
	idx := int(idx64)
	storedLen := int(uint64FromBytes(e.Data[0:8]))
	if idx < 0 || idx >= storedLen {
		return m.newErr(CategoryBounds, instr, "index out of bounds: index=%d length=%d", idx, storedLen)
	}
	e.Data[8+idx] = byte(sym)
	return nil
}

func opStrGetHandler(m *VM, instr Instruction) error {
	idx64, err := m.pop(instr)
	if err != nil {
		return err
	}
	s, err := m.pop(instr)
	if err != nil {
		return err
	}
	e, err := m.requireKind(s, KindStr, instr, "str_get")
	if err != nil {
		return err
	}
	storedLen := int(uint64FromBytes(e.Data[0:8]))
	idx := int(idx64)
	if idx < 0 || idx >= storedLen {
		return m.newErr(CategoryBounds, instr, "index out of bounds: index=%d length=%d", idx, storedLen)
	}
	m.push(uint64(e.Data[8+idx]))
	return nil
}

func opStrLenHandler(m *VM, instr Instruction) error {
	s, err := m.pop(instr)
	if err != nil {
		return err
	}
	e, err := m.requireKind(s, KindStr, instr, "str_len")
	if err != nil {
		return err
	}
	m.push(uint64FromBytes(e.Data[0:8]))
	return nil
}

func opStrBytesHandler(m *VM, instr Instruction) error {
	s, err := m.pop(instr)
	if err != nil {
		return err
	}
	e, err := m.requireKind(s, KindStr, instr, "str_bytes")
	if err != nil {
		return err
	}
	length := int(uint64FromBytes(e.Data[0:8]))
	id, aerr := m.heap.NewArray(uint64(length))
	if aerr != nil {
		return m.newErr(CategoryBounds, instr, "str_bytes: %v", aerr)
	}
	for i := 0; i < length; i++ {
		if err := m.heap.writeU64(id, i+1, uint64(e.Data[8+i])); err != nil {
			return m.newErr(CategoryBounds, instr, "str_bytes: %v", err)
		}
	}
	m.push(id)
	return nil
}

func strBytesEqual(m *VM, instr Instruction) (bool, error) {
	b, err := m.pop(instr)
	if err != nil {
		return false, err
	}
	a, err := m.pop(instr)
	if err != nil {
		return false, err
	}
	ea, err := m.requireKind(a, KindStr, instr, "str_eq")
	if err != nil {
		return false, err
	}
	eb, err := m.requireKind(b, KindStr, instr, "str_eq")
	if err != nil {
		return false, err
	}
	lenA := uint64FromBytes(ea.Data[0:8])
	lenB := uint64FromBytes(eb.Data[0:8])
	if lenA != lenB {
		return false, nil
	}
	for i := uint64(0); i < lenA; i++ {
		if ea.Data[8+i] != eb.Data[8+i] {
			return false, nil
		}
	}
	return true, nil
}

func opStrEqHandler(m *VM, instr Instruction) error {
	eq, err := strBytesEqual(m, instr)
	if err != nil {
		return err
	}
	m.push(boolSlot(eq))
	return nil
}

func opStrNeqHandler(m *VM, instr Instruction) error {
	eq, err := strBytesEqual(m, instr)
	if err != nil {
		return err
	}
	m.push(boolSlot(!eq))
	return nil
}

func strCase(upper bool) opHandler {
	return func(m *VM, instr Instruction) error {
		s, err := m.pop(instr)
		if err != nil {
			return err
		}
		e, err := m.requireKind(s, KindStr, instr, "str_case")
		if err != nil {
			return err
		}
		length := int(uint64FromBytes(e.Data[0:8]))
		out := make([]byte, length)
		for i := 0; i < length; i++ {
			ch := e.Data[8+i]
			switch {
			case upper && ch >= 'a' && ch <= 'z':
				ch -= 32
			case !upper && ch >= 'A' && ch <= 'Z':
				ch += 32
			}
			out[i] = ch
		}
		m.push(m.heap.NewStr(string(out)))
		return nil
	}
}

var (
	opStrUpperHandler = strCase(true)
	opStrLowerHandler = strCase(false)
)
