package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestVM() *VM {
	return New(&bytes.Buffer{}, &bytes.Buffer{}, nil)
}

func TestPrescanRecordsLabelsAndStripsTrailingColon(t *testing.T) {
	m := newTestVM()
	require.NoError(t, m.Load("label main\nhalt\nlabel done:\nhalt\n", "t.lvm"))
	require.Contains(t, m.labels, "main")
	require.Contains(t, m.labels, "done")
}

func TestPrescanDuplicateLabelFails(t *testing.T) {
	m := newTestVM()
	err := m.Load("label main\nlabel main\nhalt\n", "t.lvm")
	require.Error(t, err)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryLink, vmErr.Category)
}

func TestPrescanDuplicateClassFails(t *testing.T) {
	m := newTestVM()
	src := "struct P:\nend_class\nstruct P:\nend_class\nlabel main\nhalt\n"
	err := m.Load(src, "t.lvm")
	require.Error(t, err)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryLink, vmErr.Category)
}

func TestPrescanRecordsClassPositionStrippingColon(t *testing.T) {
	m := newTestVM()
	require.NoError(t, m.Load("struct P: x\nend_class\nlabel main\nhalt\n", "t.lvm"))
	require.Contains(t, m.classPositions, "P")
}
