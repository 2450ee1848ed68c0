package lang

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/confix-lang/confix/log"
)

func quietTranslator(opts ...Option) Translator {
	return NewTranslator(append([]Option{WithLogger(log.Make(nil))}, opts...)...)
}

func mustTranslate(t *testing.T, source string) *Config {
	t.Helper()

	cfg, err := quietTranslator().Translate(source)
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}

	return cfg
}

func number(t *testing.T, cfg *Config, name string) float64 {
	t.Helper()

	value, ok := cfg.Get(name)
	if !ok {
		t.Fatalf("constant %q not found", name)
	}

	if value.Kind != TypeNumber {
		t.Fatalf("constant %q is %v, expected number", name, value.Kind)
	}

	return value.Number
}

func TestTranslate_Reference(t *testing.T) {
	cfg := mustTranslate(t, "a: 2; b: $ a 3 + $;")

	if got := number(t, cfg, "b"); got != 5.0 {
		t.Errorf("expected b=5, got %v", got)
	}
}

func TestTranslate_Min(t *testing.T) {
	cfg := mustTranslate(t, "m: $ 3 4 min $;")

	if got := number(t, cfg, "m"); got != 3.0 {
		t.Errorf("expected m=3, got %v", got)
	}
}

func TestTranslate_OperandOrder(t *testing.T) {
	// 10 - (2 - 3), not (10 - 2) - 3.
	cfg := mustTranslate(t, "v: $ 10 2 3 - - $;")

	if got := number(t, cfg, "v"); got != 11.0 {
		t.Errorf("expected v=11, got %v", got)
	}

	cfg = mustTranslate(t, "q: $ 100 10 2 / / $;")

	if got := number(t, cfg, "q"); got != 20.0 {
		t.Errorf("expected q=20, got %v", got)
	}
}

func TestTranslate_ChainedReferences(t *testing.T) {
	cfg := mustTranslate(t, "a: 1; b: $ a a + $; c: $ b b * $;")

	if got := number(t, cfg, "c"); got != 4.0 {
		t.Errorf("expected c=4, got %v", got)
	}
}

func TestTranslate_DictEntriesSeeTopLevel(t *testing.T) {
	cfg := mustTranslate(t, `
		base: 10;
		d: begin
			scaled := $ base 2 * $;
			nested := begin
				offset := $ base 1 - $;
			end;
		end;
	`)

	value, _ := cfg.Get("d")
	if value.Kind != TypeDict {
		t.Fatalf("expected dictionary, got %v", value.Kind)
	}

	if got := number(t, value.Dict, "scaled"); got != 20.0 {
		t.Errorf("expected scaled=20, got %v", got)
	}

	nested, _ := value.Dict.Get("nested")
	if got := number(t, nested.Dict, "offset"); got != 9.0 {
		t.Errorf("expected offset=9, got %v", got)
	}
}

func TestTranslate_DictEntriesNotVisibleToSiblings(t *testing.T) {
	_, err := quietTranslator().Translate(
		"d: begin x := 1; y := $ x $; end;",
	)
	if !errors.Is(err, ErrUnknownConstant) {
		t.Fatalf("expected unknown constant error, got %v", err)
	}
}

func TestTranslate_ForwardReference(t *testing.T) {
	_, err := quietTranslator().Translate("b: $ a $; a: 1;")
	if !errors.Is(err, ErrUnknownConstant) {
		t.Fatalf("expected unknown constant error, got %v", err)
	}
}

func TestTranslate_UnknownConstantSuggestion(t *testing.T) {
	_, err := quietTranslator().Translate("servers: 3; b: $ serv $;")
	if !errors.Is(err, ErrUnknownConstant) {
		t.Fatalf("expected unknown constant error, got %v", err)
	}

	if !strings.Contains(err.Error(), "servers") {
		t.Errorf("expected suggestion naming 'servers', got %q", err.Error())
	}
}

func TestTranslate_DictionaryReference(t *testing.T) {
	_, err := quietTranslator().Translate(
		"d: begin end; b: $ d 1 + $;",
	)
	if !errors.Is(err, ErrNonNumericReference) {
		t.Fatalf("expected non-numeric reference error, got %v", err)
	}
}

func TestTranslate_DuplicateDictKey(t *testing.T) {
	_, err := quietTranslator().Translate(
		"d: begin k := 1; k := 2; end;",
	)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestTranslate_Arity(t *testing.T) {
	_, err := quietTranslator().Translate("e: $ 1 + $;")
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected arity error, got %v", err)
	}

	_, err = quietTranslator().Translate("e: $ 5 min $;")
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected arity error for unary min, got %v", err)
	}
}

func TestTranslate_MalformedExpression(t *testing.T) {
	_, err := quietTranslator().Translate("e: $ 1 2 $;")
	if !errors.Is(err, ErrMalformedExpression) {
		t.Fatalf("expected malformed expression error, got %v", err)
	}
}

func TestTranslate_MinShadowsConstant(t *testing.T) {
	// "min" is always the binary function inside an expression, even when a
	// constant of the same name exists.
	_, err := quietTranslator().Translate("min: 5; z: $ min $;")
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected arity error, got %v", err)
	}
}

func TestTranslate_DivisionByZero(t *testing.T) {
	cfg := mustTranslate(t, "inf_: $ 1 0 / $; nan_: $ 0 0 / $;")

	if got := number(t, cfg, "inf_"); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}

	if got := number(t, cfg, "nan_"); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestTranslate_RedefineOverwritesInPlace(t *testing.T) {
	cfg := mustTranslate(t, "a: 1; b: 2; a: 3;")

	if got := number(t, cfg, "a"); got != 3.0 {
		t.Errorf("expected a=3 after redefinition, got %v", got)
	}

	names := cfg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected order [a b], got %v", names)
	}
}

func TestTranslate_RedefineUsesValueAtReference(t *testing.T) {
	// The reference in b binds a's value at that point, not the final one.
	cfg := mustTranslate(t, "a: 1; b: $ a 1 + $; a: 10;")

	if got := number(t, cfg, "b"); got != 2.0 {
		t.Errorf("expected b=2, got %v", got)
	}

	if got := number(t, cfg, "a"); got != 10.0 {
		t.Errorf("expected a=10, got %v", got)
	}
}

func TestTranslate_StrictRedefine(t *testing.T) {
	_, err := quietTranslator(WithStrictRedefine()).
		Translate("a: 1; a: 2;")
	if !errors.Is(err, ErrRedefined) {
		t.Fatalf("expected redefinition error, got %v", err)
	}
}

func TestTranslate_OrderPreserved(t *testing.T) {
	cfg := mustTranslate(t, "z: 1; m: 2; a: 3;")

	want := []string{"z", "m", "a"}
	for i, name := range cfg.Names() {
		if name != want[i] {
			t.Fatalf("expected order %v, got %v", want, cfg.Names())
		}
	}
}

func TestTranslate_Empty(t *testing.T) {
	cfg := mustTranslate(t, "")

	if cfg.Len() != 0 {
		t.Errorf("expected empty configuration, got %d entries", cfg.Len())
	}
}
