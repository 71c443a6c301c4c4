package lexer

import (
	"fmt"
)

// Error is implemented by every lexical error the Lexer produces. Each value
// carries the full source text together with the byte span it points at, which
// is everything a diagnostic renderer needs.
type Error interface {
	error

	// Source returns the full source text the error occurred in.
	Source() string

	// At returns the byte span the diagnostic points at.
	At() Span
}

// UnexpectedCharError reports a character no lexical rule accepts. The cursor
// has already stepped past it, so the scan continues with the next character.
type UnexpectedCharError struct {
	Src  string
	Char rune
	Span Span
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character: %q", e.Char)
}

// Source returns the full source text the error occurred in
func (e *UnexpectedCharError) Source() string {
	return e.Src
}

// At returns the span covering the offending character
func (e *UnexpectedCharError) At() Span {
	return e.Span
}

// UnterminatedStringError reports a string literal still open at end of input.
// The span runs from the opening quote to the end of the source.
type UnterminatedStringError struct {
	Src  string
	Span Span
}

func (e *UnterminatedStringError) Error() string {
	return "unterminated string"
}

// Source returns the full source text the error occurred in
func (e *UnterminatedStringError) Source() string {
	return e.Src
}

// At returns the span covering the unterminated literal
func (e *UnterminatedStringError) At() Span {
	return e.Span
}

// UnterminatedBlockCommentError reports a block comment whose nesting never
// returned to depth zero. The span runs from the opening "/*" to the end of
// the source.
type UnterminatedBlockCommentError struct {
	Src  string
	Span Span
}

func (e *UnterminatedBlockCommentError) Error() string {
	return "unterminated block comment"
}

// Source returns the full source text the error occurred in
func (e *UnterminatedBlockCommentError) Source() string {
	return e.Src
}

// At returns the span covering the unterminated comment
func (e *UnterminatedBlockCommentError) At() Span {
	return e.Span
}
