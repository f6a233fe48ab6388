package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpcodeHashDeterminism asserts property 1 from spec §8: the package
// vars in opcodes.go are exactly OpcodeHash of their own mnemonic, so the
// dispatch table and the hash function can never silently drift apart.
func TestOpcodeHashDeterminism(t *testing.T) {
	cases := map[string]uint32{
		"label":      opLabel,
		"push_const": opPushConst,
		"u_add":      opUAdd,
		"i_div":      opIDiv,
		"f_mod":      opFMod,
		"str_eq":     opStrEq,
		"call":       opCall,
		"new":        opNew,
		"jump":       opJump,
		"halt":       opHalt,
	}
	for name, want := range cases {
		require.Equal(t, want, OpcodeHash(name), "OpcodeHash(%q)", name)
	}
}

func TestOpcodeHashStable(t *testing.T) {
	require.Equal(t, OpcodeHash("push_const"), OpcodeHash("push_const"))
	require.NotEqual(t, OpcodeHash("push_const"), OpcodeHash("pop_const"))
}

func TestClassHashDeterministic(t *testing.T) {
	require.Equal(t, ClassHash("Point"), ClassHash("Point"))
	require.NotEqual(t, ClassHash("Point"), ClassHash("Line"))
}
