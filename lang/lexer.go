package lang

import (
	"log/slog"
	"strings"
)

// Lexer holds all state required to tokenize a single source string.
// Create one with newLexer; never copy a Lexer after first use.
//
// Scanning is single-pass, byte-by-byte, with one byte of look-ahead for the
// two-character ":=" token and for distinguishing "||" comments from a lone
// "|" (which is not part of the language). Line and column numbers are
// tracked for every token (1-based).
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current byte under examination

	line int // current 1-based line number
	col  int // 1-based column of ch
}

// lineCommentPrefix introduces a comment that extends to end of line.
const lineCommentPrefix = "||"

// Block comments are delimited by "=begin" and the nearest following "=cut".
const (
	blockCommentOpen  = "=begin"
	blockCommentClose = "=cut"
)

// newLexer creates a Lexer positioned at the first byte of input.
func newLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar() // prime: set l.ch = input[0]

	return l
}

// tokenize scans the entire input into a token slice terminated by a
// TokenEOF token. It returns ErrLex on the first unrecognized byte or
// unterminated block comment.
func tokenize(input string) ([]Token, error) {
	l := newLexer(input)

	var tokens []Token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)

		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// next returns the next token from the input, skipping whitespace and both
// comment forms. Once the input is exhausted it returns a TokenEOF token on
// every subsequent call.
func (l *Lexer) next() (Token, error) {
	err := l.skipIgnorable()
	if err != nil {
		return Token{}, err
	}

	pos := Position{Line: l.line, Column: l.col}

	switch {
	case l.ch == 0:
		return Token{Kind: TokenEOF, Pos: pos}, nil

	case l.ch == ':':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()

			return Token{Kind: TokenDefine, Text: ":=", Pos: pos}, nil
		}

		l.readChar()

		return Token{Kind: TokenColon, Text: ":", Pos: pos}, nil

	case l.ch == ';':
		l.readChar()

		return Token{Kind: TokenSemi, Text: ";", Pos: pos}, nil

	case l.ch == '$':
		l.readChar()

		return Token{Kind: TokenDollar, Text: "$", Pos: pos}, nil

	case l.ch == '+':
		l.readChar()

		return Token{Kind: TokenPlus, Text: "+", Pos: pos}, nil

	case l.ch == '-':
		l.readChar()

		return Token{Kind: TokenMinus, Text: "-", Pos: pos}, nil

	case l.ch == '*':
		l.readChar()

		return Token{Kind: TokenStar, Text: "*", Pos: pos}, nil

	case l.ch == '/':
		l.readChar()

		return Token{Kind: TokenSlash, Text: "/", Pos: pos}, nil

	case isNameStart(l.ch):
		return l.readName(pos), nil

	case isDigit(l.ch):
		return l.readNumber(pos), nil

	default:
		return Token{}, ErrLex.With(
			slog.String("character", string(l.ch)),
			slog.Int("line", pos.Line),
			slog.Int("column", pos.Column),
		)
	}
}

// skipIgnorable advances past whitespace, "||" line comments, and
// "=begin"/"=cut" block comments. A "=" that does not open a block comment,
// or a block comment without a closing "=cut", is a lexical error.
func (l *Lexer) skipIgnorable() error {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()

		case '|':
			if !strings.HasPrefix(l.input[l.pos:], lineCommentPrefix) {
				return ErrLex.With(
					slog.String("character", "|"),
					slog.Int("line", l.line),
					slog.Int("column", l.col),
				)
			}

			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}

		case '=':
			if !strings.HasPrefix(l.input[l.pos:], blockCommentOpen) {
				return ErrLex.With(
					slog.String("character", "="),
					slog.Int("line", l.line),
					slog.Int("column", l.col),
				)
			}

			open := Position{Line: l.line, Column: l.col}

			// Non-greedy: skip to the nearest "=cut".
			offset := strings.Index(
				l.input[l.pos+len(blockCommentOpen):],
				blockCommentClose,
			)
			if offset < 0 {
				return ErrLex.Wrap(errUnterminatedComment).With(
					slog.Int("line", open.Line),
					slog.Int("column", open.Column),
				)
			}

			target := l.pos + len(blockCommentOpen) + offset +
				len(blockCommentClose)
			for l.pos < target {
				l.readChar()
			}

		default:
			return nil
		}
	}
}

// readName scans an identifier starting at the current position and
// classifies it as a keyword or a plain name.
func (l *Lexer) readName(pos Position) Token {
	start := l.pos

	for isNameStart(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	text := l.input[start:l.pos]

	return Token{Kind: lookupName(text), Text: text, Pos: pos}
}

// readNumber scans a decimal literal starting at the current position.
// A decimal point is consumed only when followed by at least one digit;
// a trailing lone "." is left for the caller to reject.
func (l *Lexer) readNumber(pos Position) Token {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'

		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return Token{Kind: TokenNumber, Text: l.input[start:l.pos], Pos: pos}
}

// readChar advances the lexer by one byte. When the input is exhausted l.ch
// is set to 0. Newlines bump the line counter and reset the column.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}

	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next byte without consuming it, or 0 at end of input.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}

	return l.input[l.readPos]
}

// isNameStart reports whether b may begin an identifier: [a-z].
func isNameStart(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
