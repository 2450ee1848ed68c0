package lang

import "log/slog"

// nodeKind identifies a grammar production in the concrete parse tree.
type nodeKind int

const (
	nodeStart nodeKind = iota
	nodeConstDecl
	nodeNumber
	nodeDictionary
	nodeDictEntry
	nodeExpr
	nodeExprItem
)

// parseNode mirrors the grammar productions one-to-one. It exists only on
// the parser → AST-builder boundary and is discarded after AST construction.
//
//	nodeStart       kids: nodeConstDecl*
//	nodeConstDecl   tok: NAME         kids: value node
//	nodeNumber      tok: NUMBER
//	nodeDictionary  tok: "begin"      kids: nodeDictEntry*
//	nodeDictEntry   tok: NAME         kids: value node
//	nodeExpr        tok: opening "$"  kids: nodeExprItem+
//	nodeExprItem    tok: NUMBER | NAME | operator
type parseNode struct {
	kind nodeKind
	tok  Token
	kids []*parseNode
}

// parser consumes a complete token stream with a single token of look-ahead.
type parser struct {
	tokens []Token
	pos    int
}

// parse runs the grammar over tokens and returns the root nodeStart node.
// The token slice must be terminated by a TokenEOF token (as produced by
// tokenize). The first mismatch aborts parsing with ErrSyntax; no partial
// tree is returned.
func parse(tokens []Token) (*parseNode, error) {
	p := &parser{tokens: tokens}

	return p.parseStart()
}

// peek returns the current token without consuming it.
func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}

	return tok
}

// expect consumes the current token if it has the wanted kind, or fails with
// ErrSyntax naming the expected construct.
func (p *parser) expect(kind TokenKind, within string) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return Token{}, p.syntaxError(kind.String(), within)
	}

	return p.advance(), nil
}

// syntaxError builds an ErrSyntax identifying the expected construct and the
// offending token with its position.
func (p *parser) syntaxError(expected, within string) *Error {
	tok := p.peek()

	return ErrSyntax.With(
		slog.String("expected", expected),
		slog.String("in", within),
		slog.String("got", tok.String()),
		slog.Int("line", tok.Pos.Line),
		slog.Int("column", tok.Pos.Column),
	)
}

// start := statement*
// statement := const_decl
func (p *parser) parseStart() (*parseNode, error) {
	root := &parseNode{kind: nodeStart}

	for p.peek().Kind != TokenEOF {
		decl, err := p.parseConstDecl()
		if err != nil {
			return nil, err
		}

		root.kids = append(root.kids, decl)
	}

	return root, nil
}

// const_decl := NAME ":" value ";"
func (p *parser) parseConstDecl() (*parseNode, error) {
	name, err := p.expect(TokenName, "constant declaration")
	if err != nil {
		return nil, err
	}

	_, err = p.expect(TokenColon, "constant declaration")
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	_, err = p.expect(TokenSemi, "constant declaration")
	if err != nil {
		return nil, err
	}

	return &parseNode{
		kind: nodeConstDecl,
		tok:  name,
		kids: []*parseNode{value},
	}, nil
}

// value := number | dictionary | expr
//
// One token of look-ahead selects the alternative.
func (p *parser) parseValue() (*parseNode, error) {
	switch p.peek().Kind {
	case TokenNumber:
		return &parseNode{kind: nodeNumber, tok: p.advance()}, nil

	case TokenBegin:
		return p.parseDictionary()

	case TokenDollar:
		return p.parseExpr()

	default:
		return nil, p.syntaxError("number, dictionary, or expression", "value")
	}
}

// dictionary := "begin" dict_entry* "end"
func (p *parser) parseDictionary() (*parseNode, error) {
	open, err := p.expect(TokenBegin, "dictionary")
	if err != nil {
		return nil, err
	}

	dict := &parseNode{kind: nodeDictionary, tok: open}

	for p.peek().Kind != TokenEnd {
		entry, err := p.parseDictEntry()
		if err != nil {
			return nil, err
		}

		dict.kids = append(dict.kids, entry)
	}

	_, err = p.expect(TokenEnd, "dictionary")
	if err != nil {
		return nil, err
	}

	return dict, nil
}

// dict_entry := NAME ":=" value ";"
func (p *parser) parseDictEntry() (*parseNode, error) {
	name, err := p.expect(TokenName, "dictionary entry")
	if err != nil {
		return nil, err
	}

	_, err = p.expect(TokenDefine, "dictionary entry")
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	_, err = p.expect(TokenSemi, "dictionary entry")
	if err != nil {
		return nil, err
	}

	return &parseNode{
		kind: nodeDictEntry,
		tok:  name,
		kids: []*parseNode{value},
	}, nil
}

// expr := "$" expr_item+ "$"
// expr_item := NUMBER | NAME | "+" | "-" | "*" | "/"
func (p *parser) parseExpr() (*parseNode, error) {
	open, err := p.expect(TokenDollar, "expression")
	if err != nil {
		return nil, err
	}

	expr := &parseNode{kind: nodeExpr, tok: open}

	for {
		switch p.peek().Kind {
		case TokenNumber, TokenName,
			TokenPlus, TokenMinus, TokenStar, TokenSlash:
			expr.kids = append(
				expr.kids,
				&parseNode{kind: nodeExprItem, tok: p.advance()},
			)

		case TokenDollar:
			if len(expr.kids) == 0 {
				return nil, p.syntaxError("expression item", "expression")
			}

			p.advance()

			return expr, nil

		default:
			return nil, p.syntaxError(
				`expression item or closing "$"`,
				"expression",
			)
		}
	}
}
