package vm

func opCallHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "call requires 1 argument; usage: call <label>")
	}
	idx, ok := m.labels[instr.Args[0]]
	if !ok {
		return m.newErr(CategoryLink, instr, "label %q is not found", instr.Args[0])
	}
	ret := m.ip
	m.pushCall(ret, 0, false)
	m.ip = idx + 1
	return nil
}

func opCallDynamicHandler(m *VM, instr Instruction) error {
	pos, err := m.pop(instr)
	if err != nil {
		return err
	}
	ret := m.ip
	m.pushCall(ret, 0, false)
	m.ip = int(pos) + 1
	return nil
}

func opRetHandler(m *VM, instr Instruction) error {
	n := len(m.callStack)
	if n == 0 {
		return m.newErr(CategoryState, instr, "ret used without a matching call")
	}
	ret := m.callStack[n-1]
	m.callStack = m.callStack[:n-1]
	m.frames = m.frames[:len(m.frames)-1]
	m.ip = ret
	return nil
}
