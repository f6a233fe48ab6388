package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapMonotoneIDs(t *testing.T) {
	h := newHeap()
	var last uint64
	for i := 0; i < 10; i++ {
		id := h.NewNum(uint64(i))
		require.Greater(t, id, last)
		last = id
	}
	require.Equal(t, uint64(10), last)
}

func TestHeapNumRoundTrip(t *testing.T) {
	h := newHeap()
	id := h.NewNum(42)
	v, err := h.readU64(id, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)
}

func TestHeapStrRoundTrip(t *testing.T) {
	h := newHeap()
	id := h.NewStr("hello")
	s, err := h.ReadString(id)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestHeapArrayBoundsChecked(t *testing.T) {
	h := newHeap()
	id, err := h.NewArray(3)
	require.NoError(t, err)
	require.NoError(t, h.writeU64(id, 1, 99))
	v, err := h.readU64(id, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(99), v)

	_, err = h.readU64(id, 4)
	require.Error(t, err)
}

func TestHeapArrayLengthCapEnforced(t *testing.T) {
	h := newHeap()
	_, err := h.NewArray(maxArrayLen + 1)
	require.Error(t, err)
}

func TestHeapFreeRemovesEntry(t *testing.T) {
	h := newHeap()
	id := h.NewNum(1)
	require.NoError(t, h.Free(id))
	_, err := h.get(id)
	require.Error(t, err)
	require.Error(t, h.Free(id))
}

func TestHeapObjectLayout(t *testing.T) {
	h := newHeap()
	id := h.NewObject(ClassHash("P"), 2)
	classHash, err := h.readU64(id, 0)
	require.NoError(t, err)
	require.Equal(t, ClassHash("P"), classHash)
	fieldCount, err := h.readU64(id, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(2), fieldCount)
}
