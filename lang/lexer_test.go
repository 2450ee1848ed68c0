package lang

import (
	"errors"
	"testing"
)

func TestTokenize_ConstDecl(t *testing.T) {
	tokens, err := tokenize("servers: 5;")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	want := []TokenKind{
		TokenName, TokenColon, TokenNumber, TokenSemi, TokenEOF,
	}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}

	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}

	if tokens[0].Text != "servers" {
		t.Errorf("expected name 'servers', got %q", tokens[0].Text)
	}

	if tokens[2].Text != "5" {
		t.Errorf("expected number '5', got %q", tokens[2].Text)
	}
}

func TestTokenize_DefineVsColon(t *testing.T) {
	tokens, err := tokenize("a := b : c")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[1].Kind != TokenDefine {
		t.Errorf("expected := token, got %v", tokens[1].Kind)
	}

	if tokens[3].Kind != TokenColon {
		t.Errorf("expected : token, got %v", tokens[3].Kind)
	}
}

func TestTokenize_Keywords(t *testing.T) {
	tokens, err := tokenize("begin end beginning")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[0].Kind != TokenBegin {
		t.Errorf("expected begin keyword, got %v", tokens[0].Kind)
	}

	if tokens[1].Kind != TokenEnd {
		t.Errorf("expected end keyword, got %v", tokens[1].Kind)
	}

	// Keywords match whole identifiers only.
	if tokens[2].Kind != TokenName || tokens[2].Text != "beginning" {
		t.Errorf("expected name 'beginning', got %v %q",
			tokens[2].Kind, tokens[2].Text)
	}
}

func TestTokenize_FractionalNumber(t *testing.T) {
	tokens, err := tokenize("pi: 3.14;")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[2].Kind != TokenNumber || tokens[2].Text != "3.14" {
		t.Errorf("expected number '3.14', got %v %q",
			tokens[2].Kind, tokens[2].Text)
	}
}

func TestTokenize_LineComment(t *testing.T) {
	tokens, err := tokenize("a: 1; || trailing words $ begin\nb: 2;")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	// a : 1 ; b : 2 ; EOF
	if len(tokens) != 9 {
		t.Fatalf("expected 9 tokens, got %d: %v", len(tokens), tokens)
	}

	if tokens[4].Text != "b" {
		t.Errorf("expected comment skipped through newline, got %v", tokens[4])
	}
}

func TestTokenize_BlockComment(t *testing.T) {
	tokens, err := tokenize("a: =begin hidden: 9; =cut 1;")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[2].Kind != TokenNumber || tokens[2].Text != "1" {
		t.Errorf("expected block comment skipped, got %v", tokens[2])
	}
}

func TestTokenize_BlockCommentNonGreedy(t *testing.T) {
	// The comment ends at the first =cut; the second =cut is an error
	// because a bare "=" cannot start a token.
	_, err := tokenize("=begin one =cut a: 1; =cut")
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected lexical error, got %v", err)
	}

	tokens, err := tokenize("=begin one =cut a: 1;")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[0].Kind != TokenName || tokens[0].Text != "a" {
		t.Errorf("expected comment to end at first =cut, got %v", tokens[0])
	}
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	_, err := tokenize("a: 1; =begin never closed")
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected lexical error, got %v", err)
	}
}

func TestTokenize_LonePipe(t *testing.T) {
	_, err := tokenize("a | b")
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected lexical error for lone '|', got %v", err)
	}
}

func TestTokenize_UppercaseRejected(t *testing.T) {
	_, err := tokenize("Servers: 5;")
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected lexical error for uppercase, got %v", err)
	}
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := tokenize("a: 1;\n  b: 2;")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[0].Pos != (Position{Line: 1, Column: 1}) {
		t.Errorf("expected 1:1 for 'a', got %v", tokens[0].Pos)
	}

	// 'b' follows a newline and two spaces.
	if tokens[4].Pos != (Position{Line: 2, Column: 3}) {
		t.Errorf("expected 2:3 for 'b', got %v", tokens[4].Pos)
	}
}

func TestTokenize_Empty(t *testing.T) {
	tokens, err := tokenize("")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if len(tokens) != 1 || tokens[0].Kind != TokenEOF {
		t.Fatalf("expected only EOF token, got %v", tokens)
	}
}
