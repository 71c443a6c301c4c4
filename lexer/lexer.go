// Package lexer implements a streaming lexical scanner for Lox source text.
// It walks the source once, left to right, and yields tokens carrying exact
// byte-range locations, suitable for diagnostics and successive parsing.
package lexer

import (
	"strings"
	"unicode/utf8"
)

// Lexer is a single-pass, pull-based scanner over one source buffer. It owns
// nothing but a view of the source and a cursor; it does no I/O and is not
// safe for concurrent use.
type Lexer struct {
	// src is the full source text being scanned.
	src string

	// pos is the absolute byte position of the cursor.
	pos int
}

// New creates a new lexer instance over the input source code.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next lexical unit, or a lexical error. The sequence of
// calls is strictly left-to-right and deterministic; each call does a bounded
// amount of work.
//
// The scan terminates with the EOF sentinel positioned at the byte length of
// the input, even for empty input. Once the cursor has reached the end, Next
// keeps returning that same EOF token.
//
// An UnexpectedCharError leaves the cursor past the offending character, so
// pulling again resumes the scan and a single run can report several errors.
// UnterminatedStringError and UnterminatedBlockCommentError park the cursor at
// the end of the input as part of detecting the failure; the rest of the
// source is silently discarded and the next call returns EOF.
func (lx *Lexer) Next() (Token, error) {
	for lx.pos < len(lx.src) {
		r, width := utf8.DecodeRuneInString(lx.src[lx.pos:])
		start := lx.pos
		lx.pos += width

		switch {
		case isWhitespace(r):
			continue

		case r == '/':
			if lx.peekByte('/') {
				lx.skipLineComment()
				continue
			}
			if lx.peekByte('*') {
				if err := lx.skipBlockComment(start); err != nil {
					return Token{}, err
				}
				continue
			}
			return lx.token(TokenSlash, start), nil

		case r == '!' || r == '=' || r == '>' || r == '<':
			return lx.opWithEqual(r, start), nil

		case r == '"':
			return lx.scanString(start)

		case isDigit(r):
			return lx.scanNumber(start), nil

		case isAlpha(r):
			return lx.scanIdentifier(start), nil

		default:
			if kind, ok := punctKind(r); ok {
				return lx.token(kind, start), nil
			}
			return Token{}, &UnexpectedCharError{
				Src:  lx.src,
				Char: r,
				Span: NewSpan(start, lx.pos),
			}
		}
	}

	return EOF(len(lx.src)), nil
}

// token wraps the bytes between start and the cursor into a Token. The lexeme
// is a view into the source, not a copy.
func (lx *Lexer) token(kind TokenKind, start int) Token {
	return NewToken(kind, lx.src[start:lx.pos], NewSpan(start, lx.pos))
}

// peekByte reports whether the byte under the cursor is b. All lookahead in
// the grammar is over ASCII, so a byte comparison is exact.
func (lx *Lexer) peekByte(b byte) bool {
	return lx.pos < len(lx.src) && lx.src[lx.pos] == b
}

// opWithEqual emits the two-character kind when the operator is followed by
// "=", otherwise the one-character kind. Greedy: the longer form always wins.
func (lx *Lexer) opWithEqual(r rune, start int) Token {
	var one, two TokenKind
	switch r {
	case '!':
		one, two = TokenBang, TokenBangEqual
	case '=':
		one, two = TokenEqual, TokenEqualEqual
	case '>':
		one, two = TokenGreater, TokenGreaterEqual
	case '<':
		one, two = TokenLess, TokenLessEqual
	}
	if lx.peekByte('=') {
		lx.pos++
		return lx.token(two, start)
	}
	return lx.token(one, start)
}

// skipLineComment advances the cursor up to, but not including, the next
// newline. The whole comment produces no token.
func (lx *Lexer) skipLineComment() {
	if i := strings.IndexByte(lx.src[lx.pos:], '\n'); i >= 0 {
		lx.pos += i
	} else {
		lx.pos = len(lx.src)
	}
}

// skipBlockComment consumes a block comment opened at start, tracking nesting
// depth: every inner "/*" increments it, every "*/" decrements it, depth zero
// closes the comment. The whole nested span is discarded without a token. If
// the input ends first the scan fails with the cursor at end of input.
func (lx *Lexer) skipBlockComment(start int) error {
	lx.pos++ // the "*" of the opening "/*"
	depth := 1
	for lx.pos < len(lx.src) {
		switch {
		case strings.HasPrefix(lx.src[lx.pos:], "/*"):
			lx.pos += 2
			depth++
		case strings.HasPrefix(lx.src[lx.pos:], "*/"):
			lx.pos += 2
			depth--
			if depth == 0 {
				return nil
			}
		default:
			_, width := utf8.DecodeRuneInString(lx.src[lx.pos:])
			lx.pos += width
		}
	}
	return &UnterminatedBlockCommentError{
		Src:  lx.src,
		Span: NewSpan(start, lx.pos),
	}
}

// scanString consumes a string literal opened at start. Characters are taken
// verbatim until the closing quote: no escape sequences, newlines allowed.
// The token spans the full literal including both quotes.
func (lx *Lexer) scanString(start int) (Token, error) {
	for lx.pos < len(lx.src) {
		r, width := utf8.DecodeRuneInString(lx.src[lx.pos:])
		lx.pos += width
		if r == '"' {
			return lx.token(TokenString, start), nil
		}
	}
	return Token{}, &UnterminatedStringError{
		Src:  lx.src,
		Span: NewSpan(start, lx.pos),
	}
}

// scanNumber consumes a maximal digit run, then a fractional part only when
// the dot is followed by another digit. "123." is the number "123" and the
// dot is left for the next pull.
func (lx *Lexer) scanNumber(start int) Token {
	lx.consumeDigits()
	if lx.peekByte('.') && lx.pos+1 < len(lx.src) && isDigit(rune(lx.src[lx.pos+1])) {
		lx.pos++ // the "."
		lx.consumeDigits()
	}
	return lx.token(TokenNumber, start)
}

func (lx *Lexer) consumeDigits() {
	for lx.pos < len(lx.src) && isDigit(rune(lx.src[lx.pos])) {
		lx.pos++
	}
}

// scanIdentifier consumes a maximal run of ASCII alphanumerics and "_" and
// emits a keyword kind when the whole lexeme matches a reserved word.
func (lx *Lexer) scanIdentifier(start int) Token {
	for lx.pos < len(lx.src) && isAlphaNumeric(rune(lx.src[lx.pos])) {
		lx.pos++
	}
	if kind, ok := keywordKind(lx.src[start:lx.pos]); ok {
		return lx.token(kind, start)
	}
	return lx.token(TokenIdentifier, start)
}

// Tokenize drains a full scan of src in one call, collecting every token and
// every lexical error. The returned tokens always end with the EOF sentinel.
func Tokenize(src string) ([]Token, []error) {
	lx := New(src)

	tokens := []Token{}
	errs := []error{}
	for {
		tok, err := lx.Next()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, errs
		}
	}
}
