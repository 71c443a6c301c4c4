package lexer

// TokenKind represents all the possible kinds of a lexical unit
type TokenKind uint8

// List of kinds of lexical units
const (
	TokenInvalid TokenKind = iota

	// Single-character tokens
	TokenLeftParen  // "("
	TokenRightParen // ")"
	TokenLeftBrace  // "{"
	TokenRightBrace // "}"
	TokenComma      // ","
	TokenDot        // "."
	TokenMinus      // "-"
	TokenPlus       // "+"
	TokenSemicolon  // ";"
	TokenSlash      // "/"
	TokenStar       // "*"

	// One or two character tokens
	TokenBang         // "!"
	TokenBangEqual    // "!="
	TokenEqual        // "="
	TokenEqualEqual   // "=="
	TokenGreater      // ">"
	TokenGreaterEqual // ">="
	TokenLess         // "<"
	TokenLessEqual    // "<="

	// Literals
	TokenString
	TokenNumber
	TokenIdentifier

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFor
	TokenFun
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF // End of input
)

var tokenNames = map[TokenKind]string{
	TokenInvalid:      "invalid",
	TokenLeftParen:    "left_paren",
	TokenRightParen:   "right_paren",
	TokenLeftBrace:    "left_brace",
	TokenRightBrace:   "right_brace",
	TokenComma:        "comma",
	TokenDot:          "dot",
	TokenMinus:        "minus",
	TokenPlus:         "plus",
	TokenSemicolon:    "semicolon",
	TokenSlash:        "slash",
	TokenStar:         "star",
	TokenBang:         "bang",
	TokenBangEqual:    "bang_equal",
	TokenEqual:        "equal",
	TokenEqualEqual:   "equal_equal",
	TokenGreater:      "greater",
	TokenGreaterEqual: "greater_equal",
	TokenLess:         "less",
	TokenLessEqual:    "less_equal",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenIdentifier:   "identifier",
	TokenAnd:          "and",
	TokenClass:        "class",
	TokenElse:         "else",
	TokenFalse:        "false",
	TokenFor:          "for",
	TokenFun:          "fun",
	TokenIf:           "if",
	TokenNil:          "nil",
	TokenOr:           "or",
	TokenPrint:        "print",
	TokenReturn:       "return",
	TokenSuper:        "super",
	TokenThis:         "this",
	TokenTrue:         "true",
	TokenVar:          "var",
	TokenWhile:        "while",
	TokenEOF:          "EOF",
}

func (tt TokenKind) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// keywords maps reserved words to their token kinds. Lookup is by exact
// match over the whole lexeme, so "andy" is an identifier, not "and".
var keywords = map[string]TokenKind{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

func keywordKind(lexeme string) (TokenKind, bool) {
	kind, ok := keywords[lexeme]
	return kind, ok
}

var punctuation = map[rune]TokenKind{
	'(': TokenLeftParen,
	')': TokenRightParen,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	',': TokenComma,
	'.': TokenDot,
	'-': TokenMinus,
	'+': TokenPlus,
	';': TokenSemicolon,
	'/': TokenSlash,
	'*': TokenStar,
	'!': TokenBang,
	'=': TokenEqual,
	'>': TokenGreater,
	'<': TokenLess,
}

// punctKind returns the single-character token kind for r. The second return
// value reports whether r is punctuation at all, so no call site ever feeds
// an arbitrary character into an unchecked conversion.
func punctKind(r rune) (TokenKind, bool) {
	kind, ok := punctuation[r]
	return kind, ok
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
