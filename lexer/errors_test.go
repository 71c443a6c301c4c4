package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorValues(t *testing.T) {
	src := "var @"

	testCases := []struct {
		err Error
		msg string
		at  Span
	}{
		{
			err: &UnexpectedCharError{Src: src, Char: '@', Span: NewSpan(4, 5)},
			msg: "unexpected character: '@'",
			at:  NewSpan(4, 5),
		},
		{
			err: &UnterminatedStringError{Src: src, Span: NewSpan(0, 5)},
			msg: "unterminated string",
			at:  NewSpan(0, 5),
		},
		{
			err: &UnterminatedBlockCommentError{Src: src, Span: NewSpan(0, 5)},
			msg: "unterminated block comment",
			at:  NewSpan(0, 5),
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.msg, tc.err.Error())
		assert.Equal(t, src, tc.err.Source())
		assert.Equal(t, tc.at, tc.err.At())
	}
}
