package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStripsCommentsAndBlankLines(t *testing.T) {
	src := "# a full comment\nlabel main\n  push_const int 1 // trailing\nhalt ; also a comment\n\n"
	instrs, err := Load(src, "t.lvm")
	require.NoError(t, err)
	require.Len(t, instrs, 3)
	require.Equal(t, OpcodeHash("label"), instrs[0].Op)
	require.Equal(t, []string{"main"}, instrs[0].Args)
	require.Equal(t, OpcodeHash("push_const"), instrs[1].Op)
	require.Equal(t, []string{"int", "1"}, instrs[1].Args)
	require.Equal(t, OpcodeHash("halt"), instrs[2].Op)
}

func TestLoadQuotedArgumentKeepsWhitespaceAndQuotes(t *testing.T) {
	src := `push_const str "hello world"`
	instrs, err := Load(src, "t.lvm")
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	require.Equal(t, []string{"str", `"hello world"`}, instrs[0].Args)
}

// TestStripCommentIgnoresQuoting asserts spec §4.2 step 2 runs before
// quote-aware tokenizing (step 4): truncation has no quote exception, so
// a marker inside what will become a quoted argument still ends the
// line, matching original_source/vm/loader.rs's unconditional
// line.find('#')/"//"/';' priority search.
func TestStripCommentIgnoresQuoting(t *testing.T) {
	require.Equal(t, `push_const str "a `, stripComment(`push_const str "a # b"`))
	require.Equal(t, `push_const str "a `, stripComment(`push_const str "a // b"`))
	require.Equal(t, `push_const str "a `, stripComment(`push_const str "a ; b"`))
	require.Equal(t, "", stripComment("# // ;"))
	// '#' is checked first regardless of where it appears relative to the
	// other markers, matching the ground truth's priority search.
	require.Equal(t, "keep // drop ; drop ", stripComment("keep // drop ; drop # drop"))
}

// TestLoadCommentTruncationInsideQuoteLeavesUnterminatedQuote: since
// truncation happens before tokenizing and takes no account of quoting,
// a comment marker inside a quoted argument truncates away the closing
// quote, which then surfaces as a Parse error from the tokenizer rather
// than a preserved literal.
func TestLoadCommentTruncationInsideQuoteLeavesUnterminatedQuote(t *testing.T) {
	_, err := Load(`push_const str "a # b"`, "t.lvm")
	require.Error(t, err)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryParse, vmErr.Category)
}

func TestLoadUnterminatedQuoteIsParseError(t *testing.T) {
	_, err := Load(`push_const str "unterminated`, "t.lvm")
	require.Error(t, err)
	var vmErr *VMError
	require.ErrorAs(t, err, &vmErr)
	require.Equal(t, CategoryParse, vmErr.Category)
}

func TestLoadLowercasesOpcodeButPreservesArgCase(t *testing.T) {
	instrs, err := Load("STORE_VAR MyVar", "t.lvm")
	require.NoError(t, err)
	require.Equal(t, OpcodeHash("store_var"), instrs[0].Op)
	require.Equal(t, []string{"MyVar"}, instrs[0].Args)
}
