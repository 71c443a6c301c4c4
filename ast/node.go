// Package ast defines the expression tree for Lox source. It is the data
// model a parser targets: a sealed tagged union matched with exhaustive type
// switches, no visitor machinery.
package ast

// Expr is implemented by every expression node.
type Expr interface {
	expr()
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator applied to one operand.
type Unary struct {
	Op    UnaryOp
	Right Expr
}

// Number is a numeric literal.
type Number float64

// String is a string literal, without the surrounding quotes.
type String string

// Bool is a boolean literal.
type Bool bool

// Nil is the nil literal.
type Nil struct{}

func (*Binary) expr()   {}
func (*Grouping) expr() {}
func (*Unary) expr()    {}
func (Number) expr()    {}
func (String) expr()    {}
func (Bool) expr()      {}
func (Nil) expr()       {}

// BinaryOp represents the binary operators of the language
type BinaryOp uint8

// List of binary operators
const (
	OpEqualEqual BinaryOp = iota
	OpBangEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpPlus
	OpMinus
	OpStar
	OpSlash
)

var binaryOpNames = map[BinaryOp]string{
	OpEqualEqual:   "==",
	OpBangEqual:    "!=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpPlus:         "+",
	OpMinus:        "-",
	OpStar:         "*",
	OpSlash:        "/",
}

func (op BinaryOp) String() string {
	return binaryOpNames[op]
}

// UnaryOp represents the unary operators of the language
type UnaryOp uint8

// List of unary operators
const (
	OpNegate UnaryOp = iota // "-"
	OpNot                   // "!"
)

var unaryOpNames = map[UnaryOp]string{
	OpNegate: "-",
	OpNot:    "!",
}

func (op UnaryOp) String() string {
	return unaryOpNames[op]
}
