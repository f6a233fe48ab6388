package vm

func opJumpHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "jump requires 1 argument; usage: jump <label>")
	}
	return m.jumpToLabel(instr.Args[0], instr)
}

func opJumpIfTrueHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "jump_if_true requires 1 argument; usage: jump_if_true <label>")
	}
	cond, err := m.pop(instr)
	if err != nil {
		return err
	}
	if cond == 1 {
		return m.jumpToLabel(instr.Args[0], instr)
	}
	return nil
}

func opJumpIfFalseHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "jump_if_false requires 1 argument; usage: jump_if_false <label>")
	}
	cond, err := m.pop(instr)
	if err != nil {
		return err
	}
	if cond != 1 {
		return m.jumpToLabel(instr.Args[0], instr)
	}
	return nil
}

func opJumpIfNullHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "jump_if_null requires 1 argument; usage: jump_if_null <label>")
	}
	val, err := m.pop(instr)
	if err != nil {
		return err
	}
	if val == 0 {
		return m.jumpToLabel(instr.Args[0], instr)
	}
	return nil
}

// opLabelHandler is a no-op: encountering a label during execution just
// means control fell through to it.
func opLabelHandler(m *VM, instr Instruction) error { return nil }
