package ast

import (
	"fmt"
	"io"
	"strconv"
)

// Encode transforms an expression into its parenthesized prefix form, the
// form used when dumping trees for inspection.
func Encode(e Expr) []byte {
	return []byte(encode(e))
}

// Print writes a human-readable representation of an expression
func Print(w io.Writer, e Expr) {
	fmt.Fprintln(w, encode(e))
}

func encode(e Expr) string {
	switch e := e.(type) {
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", e.Op, encode(e.Left), encode(e.Right))

	case *Grouping:
		return fmt.Sprintf("(group %s)", encode(e.Expression))

	case *Unary:
		return fmt.Sprintf("(%s %s)", e.Op, encode(e.Right))

	case Number:
		return strconv.FormatFloat(float64(e), 'f', -1, 64)

	case String:
		return string(e)

	case Bool:
		return strconv.FormatBool(bool(e))

	case Nil:
		return "nil"

	default:
		panic("unknown expression type")
	}
}
