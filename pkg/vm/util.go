package vm

import "encoding/binary"

func uint64FromBytes(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// boolSlot encodes the VM's canonical boolean representation: exactly 1
// for true, exactly 0 for false (spec §4.5 "Booleans").
func boolSlot(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
