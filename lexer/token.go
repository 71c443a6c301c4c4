package lexer

import (
	"fmt"
)

// Span is a half-open [start, end) byte range into the source buffer.
// The invariant end >= start holds for every span the lexer produces.
type Span struct {
	start int
	end   int
}

// NewSpan creates a byte-offset span
func NewSpan(start, end int) Span {
	return Span{start: start, end: end}
}

// Start returns the byte offset of the first byte of the span
func (s Span) Start() int {
	return s.start
}

// End returns the byte offset one past the last byte of the span
func (s Span) End() int {
	return s.end
}

// Len returns the number of bytes the span covers
func (s Span) Len() int {
	return s.end - s.start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.start, s.end)
}

// Token represents a known sequence of characters (lexical unit). The lexeme
// is a substring of the scanned source over exactly the token's span; it
// shares the source's backing array, never a copy.
type Token struct {
	kind   TokenKind
	lexeme string
	span   Span
}

// NewToken creates a lexical unit
func NewToken(kind TokenKind, lexeme string, span Span) Token {
	return Token{
		kind:   kind,
		lexeme: lexeme,
		span:   span,
	}
}

// EOF returns the sentinel token that terminates a scan, positioned at the
// byte length of the input. Its lexeme is the empty tail of the source.
func EOF(offset int) Token {
	return Token{
		kind: TokenEOF,
		span: NewSpan(offset, offset),
	}
}

// Kind returns the kind of the lexical unit
func (t Token) Kind() TokenKind {
	return t.kind
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Span returns the byte range the lexical unit covers
func (t Token) Span() Span {
	return t.span
}

// Is returns true if the token matches the given kind
func (t Token) Is(kind TokenKind) bool {
	return t.kind == kind
}

func (t Token) String() string {
	if t.kind == TokenEOF {
		return fmt.Sprintf("(:%v [%v])", t.kind, t.span)
	}
	return fmt.Sprintf("(:%v %q [%v])", t.kind, t.lexeme, t.span)
}
