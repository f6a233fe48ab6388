package vm

func opStoreVarHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "store_var requires 1 argument; usage: store_var <name>")
	}
	val, err := m.pop(instr)
	if err != nil {
		return err
	}
	m.curFrame().vars[instr.Args[0]] = val
	return nil
}

func opLoadVarHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "load_var requires 1 argument; usage: load_var <name>")
	}
	val, ok := m.curFrame().vars[instr.Args[0]]
	if !ok {
		return m.newErr(CategoryState, instr, "undefined variable %q", instr.Args[0])
	}
	m.push(val)
	return nil
}

// opFreeHandler removes a local variable AND deallocates its referenced
// heap entry. It is the VM's only reclamation mechanism (spec §5).
func opFreeHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "free requires 1 argument; usage: free <name>")
	}
	name := instr.Args[0]
	ref, ok := m.curFrame().vars[name]
	if !ok {
		return m.newErr(CategoryState, instr, "undefined variable %q", name)
	}
	delete(m.curFrame().vars, name)
	if err := m.heap.Free(ref); err != nil {
		return m.newErr(CategoryHost, instr, "free: %v", err)
	}
	return nil
}

func opCloneHandler(m *VM, instr Instruction) error {
	ref, err := m.pop(instr)
	if err != nil {
		return err
	}
	entry, err := m.heap.get(ref)
	if err != nil {
		return m.newErr(CategoryState, instr, "clone: %v", err)
	}

	switch entry.Kind {
	case KindNum:
		v, _ := m.heap.readU64(ref, 0)
		m.push(m.heap.NewNum(v))
	case KindStr:
		s, _ := m.heap.ReadString(ref)
		m.push(m.heap.NewStr(s))
	case KindArray:
		length, _ := m.heap.readU64(ref, 0)
		id, aerr := m.heap.NewArray(length)
		if aerr != nil {
			return m.newErr(CategoryBounds, instr, "clone: %v", aerr)
		}
		for i := uint64(0); i < length; i++ {
			v, _ := m.heap.readU64(ref, int(i)+1)
			_ = m.heap.writeU64(id, int(i)+1, v)
		}
		m.push(id)
	case KindObject:
		classHash, _ := m.heap.readU64(ref, 0)
		fieldCount, _ := m.heap.readU64(ref, 1)
		id := m.heap.NewObject(classHash, int(fieldCount))
		for i := uint64(0); i < fieldCount; i++ {
			v, _ := m.heap.readU64(ref, int(i)+2)
			_ = m.heap.writeU64(id, int(i)+2, v)
		}
		m.push(id)
	default:
		return m.newErr(CategoryType, instr, "clone: unknown heap kind")
	}
	return nil
}
