package lang

// Type identifies the kind of a constant's value.
type Type int

const (
	// TypeNumber is a numeric literal.
	TypeNumber Type = iota

	// TypeDict is a nested dictionary of named values.
	TypeDict

	// TypeExpr is a postfix arithmetic expression.
	TypeExpr
)

// String returns a human-readable name for the value type.
func (t Type) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeDict:
		return "dictionary"
	case TypeExpr:
		return "expression"
	default:
		return "unknown"
	}
}

// Decl is one top-level constant declaration.
type Decl struct {
	Name  string
	Value Value
	Pos   Position
}

// Value is the right-hand side of a declaration or dictionary entry.
// Exactly one of Number, Dict, or Expr is meaningful, selected by Type.
type Value struct {
	Type   Type
	Number float64
	Dict   Dict
	Expr   Expr
	Pos    Position
}

// Dict is an ordered list of key/value entries. Entry order is declaration
// order and is preserved through evaluation and output.
type Dict struct {
	Entries []DictEntry
}

// DictEntry is one key/value pair inside a dictionary literal.
type DictEntry struct {
	Key   string
	Value Value
	Pos   Position
}

// Expr is a postfix expression: a flat sequence of items evaluated left to
// right against an operand stack.
type Expr struct {
	Items []ExprItem
}

// ExprItemKind identifies the role of one item in a postfix expression.
type ExprItemKind int

const (
	// ExprLiteral pushes a numeric literal.
	ExprLiteral ExprItemKind = iota

	// ExprReference pushes the value of a previously declared constant.
	ExprReference

	// ExprOperator pops two operands and pushes the result of one of the
	// arithmetic operators "+", "-", "*", or "/".
	ExprOperator

	// ExprFunction pops two operands and pushes the result of a named
	// binary function ("min").
	ExprFunction
)

// String returns a human-readable name for the item kind.
func (k ExprItemKind) String() string {
	switch k {
	case ExprLiteral:
		return "literal"
	case ExprReference:
		return "reference"
	case ExprOperator:
		return "operator"
	case ExprFunction:
		return "function"
	default:
		return "unknown"
	}
}

// ExprItem is one postfix item. Number is meaningful for ExprLiteral; Name
// holds the referenced constant, operator symbol, or function name for the
// remaining kinds.
type ExprItem struct {
	Kind   ExprItemKind
	Number float64
	Name   string
	Pos    Position
}
