package vm

import (
	"strconv"
	"time"
)

func opSleepHandler(m *VM, instr Instruction) error {
	ms, err := m.pop(instr)
	if err != nil {
		return err
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return nil
}

// opHaltHandler implements halt [code]: prints the diagnostic dump
// (spec §6.3) then returns *ErrHalt with the resolved exit code. The
// code is, in order of preference: the literal argument, the top of
// stack if non-empty, else 0.
func opHaltHandler(m *VM, instr Instruction) error {
	var code int
	switch {
	case len(instr.Args) == 1:
		c, err := strconv.Atoi(instr.Args[0])
		if err != nil {
			return m.newErr(CategoryType, instr, "halt: invalid exit code %q", instr.Args[0])
		}
		code = c
	case len(m.stack) > 0:
		v, err := m.pop(instr)
		if err != nil {
			return err
		}
		code = int(int32(v))
	default:
		code = 0
	}

	m.DumpState(m.dumpOut)
	return &ErrHalt{Code: code}
}
