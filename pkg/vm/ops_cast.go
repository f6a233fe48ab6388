package vm

import "math"

// opCastHandler implements cast <from> <to>. Only the six pairs listed
// in spec §4.5 are supported; any other pair is a Type error.
func opCastHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 2 {
		return m.newErr(CategoryLink, instr, "cast requires 2 arguments; usage: cast <from> <to>")
	}
	val, err := m.pop(instr)
	if err != nil {
		return err
	}

	from := OpcodeHash(instr.Args[0])
	to := OpcodeHash(instr.Args[1])

	var result uint64
	switch {
	case from == typeUnt && to == typeInt:
		result = val // bit reinterpret
	case from == typeUnt && to == typeFloat:
		result = math.Float64bits(float64(val))
	case from == typeInt && to == typeUnt:
		result = val // bit reinterpret
	case from == typeInt && to == typeFloat:
		result = math.Float64bits(float64(int64(val)))
	case from == typeFloat && to == typeInt:
		result = uint64(int64(math.Trunc(math.Float64frombits(val))))
	case from == typeFloat && to == typeUnt:
		result = uint64(math.Trunc(math.Float64frombits(val)))
	default:
		return m.newErr(CategoryType, instr, "unsupported cast: %s -> %s", instr.Args[0], instr.Args[1])
	}

	m.push(result)
	return nil
}
