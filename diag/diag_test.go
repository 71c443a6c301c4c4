package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox-lang/lox/lexer"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "var @x = 1;\n", 4, 5, "unexpected character: '@'")

	assert.Equal(t, "error: unexpected character: '@'\n"+
		" --> 1:5\n"+
		"  |\n"+
		"1 | var @x = 1;\n"+
		"  |     ^\n",
		buf.String())
}

func TestRenderSecondLine(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "var a = 1;\nvar b = @;\n", 19, 20, "unexpected character: '@'")

	assert.Equal(t, "error: unexpected character: '@'\n"+
		" --> 2:9\n"+
		"  |\n"+
		"2 | var b = @;\n"+
		"  |         ^\n",
		buf.String())
}

func TestRenderRuneColumns(t *testing.T) {
	// Columns and caret width count runes, not bytes.
	var buf bytes.Buffer
	Render(&buf, `"日本" @`, 9, 10, "unexpected character: '@'")

	assert.Equal(t, "error: unexpected character: '@'\n"+
		" --> 1:6\n"+
		"  |\n"+
		"1 | \"日本\" @\n"+
		"  |      ^\n",
		buf.String())
}

func TestRenderMultilineSpan(t *testing.T) {
	// A span crossing a line break is pointed at on its first line.
	var buf bytes.Buffer
	Render(&buf, "\"ab\ncd", 0, 6, "unterminated string")

	assert.Equal(t, "error: unterminated string\n"+
		" --> 1:1\n"+
		"  |\n"+
		"1 | \"ab\n"+
		"  | ^^^\n",
		buf.String())
}

func TestRenderEmptySpan(t *testing.T) {
	// Zero-width spans still get one caret.
	var buf bytes.Buffer
	Render(&buf, "x", 1, 1, "somewhere")

	assert.Equal(t, "error: somewhere\n"+
		" --> 1:2\n"+
		"  |\n"+
		"1 | x\n"+
		"  |  ^\n",
		buf.String())
}

func TestRenderError(t *testing.T) {
	src := "foo@"
	_, errs := lexer.Tokenize(src)
	if assert.Len(t, errs, 1) {
		var buf bytes.Buffer
		assert.True(t, RenderError(&buf, errs[0]))
		assert.Contains(t, buf.String(), "unexpected character: '@'")
		assert.Contains(t, buf.String(), "--> 1:4")
	}

	var buf bytes.Buffer
	assert.False(t, RenderError(&buf, errors.New("plain error")))
	assert.Empty(t, buf.String())
}
