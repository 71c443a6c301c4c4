// Package diag renders labeled pointers into source text. Its whole contract
// is: given source text, a half-open byte span and a message, print the
// offending line with a caret run under the spanned characters.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lox-lang/lox/lexer"
)

// SpanError is implemented by errors that carry their source text and a byte
// span, which is all the renderer needs from a producer.
type SpanError interface {
	error
	Source() string
	At() lexer.Span
}

// Render writes a diagnostic pointing at the byte range [start, end) of src.
// Line and column are 1-based; columns count runes, not bytes. A span that
// crosses a line break is pointed at on its first line.
func Render(w io.Writer, src string, start, end int, msg string) {
	if start < 0 {
		start = 0
	}
	if start > len(src) {
		start = len(src)
	}
	if end < start {
		end = start
	}
	if end > len(src) {
		end = len(src)
	}

	lineStart := strings.LastIndexByte(src[:start], '\n') + 1
	lineEnd := len(src)
	if i := strings.IndexByte(src[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}

	line := 1 + strings.Count(src[:start], "\n")
	col := 1 + utf8.RuneCountInString(src[lineStart:start])

	markEnd := end
	if markEnd > lineEnd {
		markEnd = lineEnd
	}
	width := utf8.RuneCountInString(src[start:markEnd])
	if width < 1 {
		width = 1
	}

	gutter := fmt.Sprintf("%d", line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(w, "error: %s\n", msg)
	fmt.Fprintf(w, "%s--> %d:%d\n", pad, line, col)
	fmt.Fprintf(w, "%s |\n", pad)
	fmt.Fprintf(w, "%s | %s\n", gutter, src[lineStart:lineEnd])
	fmt.Fprintf(w, "%s | %s%s\n", pad, strings.Repeat(" ", col-1), strings.Repeat("^", width))
}

// RenderError renders any span-carrying error and reports whether err was one.
func RenderError(w io.Writer, err error) bool {
	var se SpanError
	if !errors.As(err, &se) {
		return false
	}
	at := se.At()
	Render(w, se.Source(), at.Start(), at.End(), se.Error())
	return true
}
