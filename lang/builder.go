package lang

import (
	"log/slog"
	"strconv"
)

// funcMin is the only named binary function recognized inside expressions.
// It is an ordinary identifier everywhere else, so the distinction is drawn
// here rather than in the lexer.
const funcMin = "min"

// buildProgram lowers the concrete parse tree into the declaration list.
// Duplicate keys within a single dictionary literal fail with
// ErrDuplicateKey; top-level name reuse is legal and left for evaluation to
// resolve.
func buildProgram(root *parseNode) ([]Decl, error) {
	decls := make([]Decl, 0, len(root.kids))

	for _, kid := range root.kids {
		value, err := buildValue(kid.kids[0])
		if err != nil {
			return nil, err
		}

		decls = append(decls, Decl{
			Name:  kid.tok.Text,
			Value: value,
			Pos:   kid.tok.Pos,
		})
	}

	return decls, nil
}

func buildValue(node *parseNode) (Value, error) {
	switch node.kind {
	case nodeNumber:
		return buildNumber(node)

	case nodeDictionary:
		return buildDictionary(node)

	case nodeExpr:
		return buildExpr(node)

	default:
		// Unreachable: the parser only places value productions here.
		return Value{}, ErrSyntax.With(
			slog.String("got", node.tok.String()),
		)
	}
}

func buildNumber(node *parseNode) (Value, error) {
	num, err := strconv.ParseFloat(node.tok.Text, 64)
	if err != nil {
		return Value{}, ErrLex.Wrap(err).With(at(node.tok.Pos)...)
	}

	return Value{
		Type:   TypeNumber,
		Number: num,
		Pos:    node.tok.Pos,
	}, nil
}

func buildDictionary(node *parseNode) (Value, error) {
	entries := make([]DictEntry, 0, len(node.kids))
	seen := make(map[string]struct{}, len(node.kids))

	for _, kid := range node.kids {
		key := kid.tok.Text
		if _, dup := seen[key]; dup {
			return Value{}, ErrDuplicateKey.
				With(slog.String("key", key)).
				With(at(kid.tok.Pos)...)
		}

		seen[key] = struct{}{}

		value, err := buildValue(kid.kids[0])
		if err != nil {
			return Value{}, err
		}

		entries = append(entries, DictEntry{
			Key:   key,
			Value: value,
			Pos:   kid.tok.Pos,
		})
	}

	return Value{
		Type: TypeDict,
		Dict: Dict{Entries: entries},
		Pos:  node.tok.Pos,
	}, nil
}

func buildExpr(node *parseNode) (Value, error) {
	items := make([]ExprItem, 0, len(node.kids))

	for _, kid := range node.kids {
		item, err := buildExprItem(kid.tok)
		if err != nil {
			return Value{}, err
		}

		items = append(items, item)
	}

	return Value{
		Type: TypeExpr,
		Expr: Expr{Items: items},
		Pos:  node.tok.Pos,
	}, nil
}

func buildExprItem(tok Token) (ExprItem, error) {
	switch tok.Kind {
	case TokenNumber:
		num, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return ExprItem{}, ErrLex.Wrap(err).With(at(tok.Pos)...)
		}

		return ExprItem{Kind: ExprLiteral, Number: num, Pos: tok.Pos}, nil

	case TokenName:
		kind := ExprReference
		if tok.Text == funcMin {
			kind = ExprFunction
		}

		return ExprItem{Kind: kind, Name: tok.Text, Pos: tok.Pos}, nil

	case TokenPlus, TokenMinus, TokenStar, TokenSlash:
		return ExprItem{Kind: ExprOperator, Name: tok.Text, Pos: tok.Pos}, nil

	default:
		// Unreachable: the parser only admits expression items.
		return ExprItem{}, ErrSyntax.With(slog.String("got", tok.String()))
	}
}
