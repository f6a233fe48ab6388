package vm

// Frame is a call's local variable scope: a mapping from local name to
// slot, plus the optional this-reference active for that call (set by
// new and call_method, absent for plain call/call_dynamic frames).
type Frame struct {
	vars    map[string]uint64
	this    uint64
	hasThis bool
}

func newFrame() Frame {
	return Frame{vars: make(map[string]uint64)}
}
