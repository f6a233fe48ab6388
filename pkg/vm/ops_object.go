package vm

// opNewHandler implements new <Class> <initLabel>: lazily loads the
// class, allocates a zeroed Object, pushes the new object ID onto the
// operand stack for initLabel to consume (spec §9 open question (a)),
// then calls initLabel like `call` does, with the new frame's this bound
// to the object.
func opNewHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 2 {
		return m.newErr(CategoryLink, instr, "new requires 2 arguments; usage: new <class> <init_label>")
	}
	className, initLabel := instr.Args[0], instr.Args[1]

	ci, err := m.loadClassIfNeeded(className, instr)
	if err != nil {
		return err
	}

	objID := m.heap.NewObject(ClassHash(className), len(ci.Fields))
	m.push(objID)

	idx, ok := m.labels[initLabel]
	if !ok {
		return m.newErr(CategoryLink, instr, "label %q is not found", initLabel)
	}
	m.pushCall(m.ip, objID, true)
	m.ip = idx + 1
	return nil
}

func (m *VM) objectClass(objRef uint64, instr Instruction, op string) (*ClassInfo, error) {
	entry, err := m.heap.get(objRef)
	if err != nil {
		return nil, m.newErr(CategoryState, instr, "%s: %v", op, err)
	}
	if entry.Kind != KindObject {
		return nil, m.newErr(CategoryType, instr, "%s: heap id %d is not an Object", op, objRef)
	}
	classHash, _ := m.heap.readU64(objRef, 0)
	ci, ok := m.classes[classHash]
	if !ok {
		return nil, m.newErr(CategoryLink, instr, "%s: class for hash %d is not loaded", op, classHash)
	}
	return ci, nil
}

func opSetFieldHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "set_field requires 1 argument; usage: set_field <name>")
	}
	fieldName := instr.Args[0]
	objRef, err := m.pop(instr)
	if err != nil {
		return err
	}
	val, err := m.pop(instr)
	if err != nil {
		return err
	}

	ci, err := m.objectClass(objRef, instr, "set_field")
	if err != nil {
		return err
	}
	idx, ok := ci.fieldIndex(fieldName)
	if !ok {
		return m.newErr(CategoryLink, instr, "field %q is not found in class %q", fieldName, ci.Class)
	}
	if werr := m.heap.writeU64(objRef, idx+2, val); werr != nil {
		return m.newErr(CategoryBounds, instr, "set_field: %v", werr)
	}
	return nil
}

func opLoadFieldHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "load_field requires 1 argument; usage: load_field <name>")
	}
	fieldName := instr.Args[0]
	objRef, err := m.pop(instr)
	if err != nil {
		return err
	}

	ci, err := m.objectClass(objRef, instr, "load_field")
	if err != nil {
		return err
	}
	idx, ok := ci.fieldIndex(fieldName)
	if !ok {
		return m.newErr(CategoryLink, instr, "field %q is not found in class %q", fieldName, ci.Class)
	}
	v, rerr := m.heap.readU64(objRef, idx+2)
	if rerr != nil {
		return m.newErr(CategoryBounds, instr, "load_field: %v", rerr)
	}
	m.push(v)
	return nil
}

// opCallMethodHandler implements call_method <name>: pops an object
// reference, resolves name to a label through the object's class, and
// calls it with `this` bound to the popped object (load_this inside the
// method returns it).
func opCallMethodHandler(m *VM, instr Instruction) error {
	if len(instr.Args) != 1 {
		return m.newErr(CategoryLink, instr, "call_method requires 1 argument; usage: call_method <name>")
	}
	methodName := instr.Args[0]
	objRef, err := m.pop(instr)
	if err != nil {
		return err
	}

	ci, err := m.objectClass(objRef, instr, "call_method")
	if err != nil {
		return err
	}
	label, ok := ci.Methods[methodName]
	if !ok {
		return m.newErr(CategoryLink, instr, "method %q is not found on class %q", methodName, ci.Class)
	}
	idx, ok := m.labels[label]
	if !ok {
		return m.newErr(CategoryLink, instr, "label %q is not found", label)
	}

	m.pushCall(m.ip, objRef, true)
	m.ip = idx + 1
	return nil
}

// opLoadThisHandler pushes the current frame's this-reference. Calling
// it outside object context (a frame established by plain call or
// call_dynamic rather than new/call_method) is a State error.
func opLoadThisHandler(m *VM, instr Instruction) error {
	f := m.curFrame()
	if !f.hasThis {
		return m.newErr(CategoryState, instr, "load_this used outside object context")
	}
	m.push(f.this)
	return nil
}
