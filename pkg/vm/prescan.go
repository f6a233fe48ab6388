package vm

import "strings"

// stripTrailingColon removes one trailing ':' if present. Per spec §9
// open question (c), this rule is applied unconditionally to both label
// and class declaration names, regardless of which of the two
// source-level spellings (`label L` / `label L:`, `struct C:` /
// `class C`) produced the argument.
func stripTrailingColon(s string) string {
	return strings.TrimSuffix(s, ":")
}

// prescan walks the instruction vector once, recording every label's
// position and every class declaration's position. Duplicate labels or
// duplicate classes are Link errors. Classes are recorded here but not
// materialised into a ClassInfo until first use (see loadClassIfNeeded).
func (m *VM) prescan() error {
	for idx, instr := range m.instructions {
		switch instr.Op {
		case opLabel:
			if len(instr.Args) != 1 {
				return m.newErr(CategoryLink, instr, "label requires 1 argument; usage: label <name>")
			}
			name := stripTrailingColon(instr.Args[0])
			if _, exists := m.labels[name]; exists {
				return m.newErr(CategoryLink, instr, "label %q already defined", name)
			}
			m.labels[name] = idx

		case opStruct, opClass:
			if len(instr.Args) < 1 {
				return m.newErr(CategoryLink, instr, "class declaration requires at least 1 argument; usage: struct <name>: [field]...")
			}
			name := stripTrailingColon(instr.Args[0])
			if _, exists := m.classPositions[name]; exists {
				return m.newErr(CategoryLink, instr, "class %q already defined", name)
			}
			m.classPositions[name] = idx
		}
	}
	return nil
}
