package lang

import "strconv"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// TokenEOF marks the end of the token stream.
	TokenEOF TokenKind = iota

	// TokenName is an identifier: [a-z][a-z0-9_]*.
	TokenName

	// TokenNumber is a non-negative decimal literal: [0-9]+(\.[0-9]+)?.
	TokenNumber

	// TokenColon is the ":" separating a constant name from its value.
	TokenColon

	// TokenDefine is the ":=" separating a dictionary key from its value.
	TokenDefine

	// TokenSemi is the ";" terminating a declaration or dictionary entry.
	TokenSemi

	// TokenBegin is the "begin" keyword opening a dictionary.
	TokenBegin

	// TokenEnd is the "end" keyword closing a dictionary.
	TokenEnd

	// TokenDollar is the "$" delimiting a postfix expression.
	TokenDollar

	// TokenPlus, TokenMinus, TokenStar, and TokenSlash are the arithmetic
	// operators permitted inside postfix expressions.
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
)

// String returns a human-readable name for the token kind, used in
// diagnostics.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenName:
		return "name"
	case TokenNumber:
		return "number"
	case TokenColon:
		return `":"`
	case TokenDefine:
		return `":="`
	case TokenSemi:
		return `";"`
	case TokenBegin:
		return `"begin"`
	case TokenEnd:
		return `"end"`
	case TokenDollar:
		return `"$"`
	case TokenPlus:
		return `"+"`
	case TokenMinus:
		return `"-"`
	case TokenStar:
		return `"*"`
	case TokenSlash:
		return `"/"`
	default:
		return "unknown"
	}
}

// keywords maps identifier text to its reserved token kind.
//
//nolint:gochecknoglobals
var keywords = map[string]TokenKind{
	"begin": TokenBegin,
	"end":   TokenEnd,
}

// lookupName classifies identifier text as a keyword or a plain name.
func lookupName(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}

	return TokenName
}

// Position locates a token or construct in the source text.
// Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is a single lexical unit with its raw text and source position.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

// String renders the token for diagnostics: its kind, and its text when the
// kind alone doesn't identify it.
func (t Token) String() string {
	switch t.Kind {
	case TokenName, TokenNumber:
		return t.Kind.String() + " " + strconv.Quote(t.Text)
	default:
		return t.Kind.String()
	}
}
