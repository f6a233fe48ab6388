package vm

func cmpUnsigned(op func(a, b uint64) bool) opHandler {
	return func(m *VM, instr Instruction) error {
		a, b, err := m.popTwo(instr)
		if err != nil {
			return err
		}
		m.push(boolSlot(op(a, b)))
		return nil
	}
}

func cmpSigned(op func(a, b int64) bool) opHandler {
	return func(m *VM, instr Instruction) error {
		a, b, err := m.popTwo(instr)
		if err != nil {
			return err
		}
		m.push(boolSlot(op(int64(a), int64(b))))
		return nil
	}
}

func cmpFloat(op func(a, b float64) bool) opHandler {
	return func(m *VM, instr Instruction) error {
		a, b, err := m.popTwo(instr)
		if err != nil {
			return err
		}
		m.push(boolSlot(op(popFloat(a), popFloat(b))))
		return nil
	}
}

var (
	opUEqHandler  = cmpUnsigned(func(a, b uint64) bool { return a == b })
	opUNeqHandler = cmpUnsigned(func(a, b uint64) bool { return a != b })
	opULtHandler  = cmpUnsigned(func(a, b uint64) bool { return a < b })
	opUGtHandler  = cmpUnsigned(func(a, b uint64) bool { return a > b })
	opULteHandler = cmpUnsigned(func(a, b uint64) bool { return a <= b })
	opUGteHandler = cmpUnsigned(func(a, b uint64) bool { return a >= b })

	opIEqHandler  = cmpSigned(func(a, b int64) bool { return a == b })
	opINeqHandler = cmpSigned(func(a, b int64) bool { return a != b })
	opILtHandler  = cmpSigned(func(a, b int64) bool { return a < b })
	opIGtHandler  = cmpSigned(func(a, b int64) bool { return a > b })
	opILteHandler = cmpSigned(func(a, b int64) bool { return a <= b })
	opIGteHandler = cmpSigned(func(a, b int64) bool { return a >= b })

	opFEqHandler  = cmpFloat(func(a, b float64) bool { return a == b })
	opFNeqHandler = cmpFloat(func(a, b float64) bool { return a != b })
	opFLtHandler  = cmpFloat(func(a, b float64) bool { return a < b })
	opFGtHandler  = cmpFloat(func(a, b float64) bool { return a > b })
	opFLteHandler = cmpFloat(func(a, b float64) bool { return a <= b })
	opFGteHandler = cmpFloat(func(a, b float64) bool { return a >= b })
)

func opAndHandler(m *VM, instr Instruction) error {
	a, b, err := m.popTwo(instr)
	if err != nil {
		return err
	}
	m.push(boolSlot(a == 1 && b == 1))
	return nil
}

func opOrHandler(m *VM, instr Instruction) error {
	a, b, err := m.popTwo(instr)
	if err != nil {
		return err
	}
	m.push(boolSlot(a == 1 || b == 1))
	return nil
}

func opNotHandler(m *VM, instr Instruction) error {
	a, err := m.pop(instr)
	if err != nil {
		return err
	}
	m.push(boolSlot(a != 1))
	return nil
}
