package lang

import (
	"errors"
	"testing"
)

func TestParseDecls_Shape(t *testing.T) {
	decls, err := NewTranslator().Parse("a: 1; d: begin k := $ 2 3 + $; end;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}

	if decls[0].Name != "a" || decls[0].Value.Type != TypeNumber {
		t.Errorf("unexpected first declaration: %+v", decls[0])
	}

	if decls[1].Value.Type != TypeDict {
		t.Fatalf("expected dictionary value, got %v", decls[1].Value.Type)
	}

	entries := decls[1].Value.Dict.Entries
	if len(entries) != 1 || entries[0].Key != "k" {
		t.Fatalf("unexpected dictionary entries: %+v", entries)
	}

	expr := entries[0].Value.Expr
	if len(expr.Items) != 3 || expr.Items[2].Kind != ExprOperator {
		t.Fatalf("unexpected expression items: %+v", expr.Items)
	}
}

func TestParseDecls_MinIsFunction(t *testing.T) {
	decls, err := NewTranslator().Parse("m: $ 1 2 min $;")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	items := decls[0].Value.Expr.Items
	if items[2].Kind != ExprFunction || items[2].Name != "min" {
		t.Fatalf("expected min function item, got %+v", items[2])
	}
}

func TestParseDecls_DuplicateKeyIsParseTime(t *testing.T) {
	// Duplicate keys are rejected before evaluation.
	_, err := NewTranslator().Parse("d: begin k := 1; k := 2; end;")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestTranslate_PackageLevel(t *testing.T) {
	cfg, err := Translate("a: 4;")
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}

	value, ok := cfg.Get("a")
	if !ok || value.Number != 4.0 {
		t.Fatalf("expected a=4, got %+v (ok=%v)", value, ok)
	}
}

func TestTranslate_ErrorsAreSentinels(t *testing.T) {
	cases := []struct {
		source string
		want   error
	}{
		{"a: 1; @", ErrLex},
		{"a: 1", ErrSyntax},
		{"d: begin k := 1; k := 2; end;", ErrDuplicateKey},
		{"b: $ nothing $;", ErrUnknownConstant},
		{"d: begin end; b: $ d $;", ErrNonNumericReference},
		{"e: $ 1 + $;", ErrArity},
		{"e: $ 1 2 3 + $;", ErrMalformedExpression},
	}

	for _, tc := range cases {
		_, err := quietTranslator().Translate(tc.source)
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: expected %v, got %v", tc.source, tc.want, err)
		}
	}
}

func TestTranslate_Repeatable(t *testing.T) {
	const source = "a: 2; d: begin k := $ a 3 + $; end; a: 7;"

	tr := quietTranslator()

	first, err := tr.Translate(source)
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}

	second, err := tr.Translate(source)
	if err != nil {
		t.Fatalf("repeat translate error: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}

	for i, name := range first.Names() {
		if second.Names()[i] != name {
			t.Fatalf("order differs at %d: %q vs %q",
				i, name, second.Names()[i])
		}

		a, _ := first.Get(name)
		b, _ := second.Get(name)

		if a.Kind != b.Kind {
			t.Fatalf("kind differs for %q: %v vs %v", name, a.Kind, b.Kind)
		}

		if a.Kind == TypeNumber && a.Number != b.Number {
			t.Fatalf("value differs for %q: %v vs %v",
				name, a.Number, b.Number)
		}
	}
}

func FuzzTranslate(f *testing.F) {
	f.Add("a: 1;")
	f.Add("a: 2; b: $ a 3 + $;")
	f.Add("d: begin k := 1; n := begin x := $ k $; end; end;")
	f.Add("=begin comment =cut a: 1; || trailing")
	f.Add("e: $ 10 2 3 - - $;")

	f.Fuzz(func(t *testing.T, source string) {
		cfg, err := quietTranslator().Translate(source)
		if err != nil {
			return
		}

		// A successful translation yields a configuration whose names are
		// unique and resolvable.
		seen := make(map[string]bool, cfg.Len())
		for _, name := range cfg.Names() {
			if seen[name] {
				t.Fatalf("duplicate name %q in configuration", name)
			}

			seen[name] = true

			if _, ok := cfg.Get(name); !ok {
				t.Fatalf("name %q listed but not resolvable", name)
			}
		}
	})
}
