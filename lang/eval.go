package lang

import (
	"log/slog"
	"math"

	"github.com/sahilm/fuzzy"

	"github.com/confix-lang/confix/log"
)

// evaluator resolves a declaration list into a Config. Declarations are
// processed strictly in source order, so an expression can only reference
// names declared before it.
type evaluator struct {
	env    *Config
	log    log.Logger
	strict bool
}

// evaluate processes every declaration and returns the resulting
// configuration. Redefining a top-level name replaces the earlier binding in
// place; with strict enabled it fails with ErrRedefined instead.
func (e *evaluator) evaluate(decls []Decl) (*Config, error) {
	e.env = NewConfig()

	for _, decl := range decls {
		if _, exists := e.env.Get(decl.Name); exists {
			if e.strict {
				return nil, ErrRedefined.
					With(slog.String("name", decl.Name)).
					With(at(decl.Pos)...)
			}

			e.log.Warn("constant redefined",
				slog.String("name", decl.Name),
				slog.Int("line", decl.Pos.Line),
				slog.Int("column", decl.Pos.Column),
			)
		}

		resolved, err := e.evaluateValue(decl.Value)
		if err != nil {
			return nil, err
		}

		e.env.Set(decl.Name, resolved)
	}

	return e.env, nil
}

// evaluateValue resolves one right-hand side against the bindings
// accumulated so far.
func (e *evaluator) evaluateValue(value Value) (Resolved, error) {
	switch value.Type {
	case TypeNumber:
		return Resolved{Kind: TypeNumber, Number: value.Number}, nil

	case TypeDict:
		return e.evaluateDict(value.Dict)

	case TypeExpr:
		num, err := e.evaluateExpr(value.Expr, value.Pos)
		if err != nil {
			return Resolved{}, err
		}

		return Resolved{Kind: TypeNumber, Number: num}, nil

	default:
		return Resolved{}, ErrSyntax.With(
			slog.String("got", value.Type.String()),
		)
	}
}

// evaluateDict resolves a dictionary literal. Entry expressions see the same
// environment as the enclosing declaration: sibling entries are not visible
// to one another.
func (e *evaluator) evaluateDict(dict Dict) (Resolved, error) {
	result := NewConfig()

	for _, entry := range dict.Entries {
		resolved, err := e.evaluateValue(entry.Value)
		if err != nil {
			return Resolved{}, err
		}

		result.Set(entry.Key, resolved)
	}

	return Resolved{Kind: TypeDict, Dict: result}, nil
}

// evaluateExpr runs the postfix items left to right against an operand
// stack and returns the single remaining operand.
func (e *evaluator) evaluateExpr(expr Expr, pos Position) (float64, error) {
	stack := make([]float64, 0, len(expr.Items))

	for _, item := range expr.Items {
		switch item.Kind {
		case ExprLiteral:
			stack = append(stack, item.Number)

		case ExprReference:
			num, err := e.reference(item)
			if err != nil {
				return 0, err
			}

			stack = append(stack, num)

		case ExprOperator, ExprFunction:
			if len(stack) < 2 {
				return 0, ErrArity.
					With(slog.String("operator", item.Name)).
					With(at(item.Pos)...)
			}

			// Pop order: right operand first.
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], apply(item.Name, a, b))
		}
	}

	if len(stack) != 1 {
		return 0, ErrMalformedExpression.
			With(slog.Int("operands", len(stack))).
			With(at(pos)...)
	}

	return stack[0], nil
}

// reference resolves a name inside an expression to its numeric value.
func (e *evaluator) reference(item ExprItem) (float64, error) {
	resolved, ok := e.env.Get(item.Name)
	if !ok {
		err := ErrUnknownConstant.With(slog.String("name", item.Name))

		if hint, found := e.didYouMean(item.Name); found {
			err = err.With(slog.String("did_you_mean", hint))
		}

		return 0, err.With(at(item.Pos)...)
	}

	if resolved.Kind != TypeNumber {
		return 0, ErrNonNumericReference.
			With(
				slog.String("name", item.Name),
				slog.String("type", resolved.Kind.String()),
			).
			With(at(item.Pos)...)
	}

	return resolved.Number, nil
}

// didYouMean suggests the closest declared name for an unresolved reference.
func (e *evaluator) didYouMean(name string) (string, bool) {
	matches := fuzzy.Find(name, e.env.Names())
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

// apply computes one binary operation. Division follows IEEE-754, so a zero
// divisor yields an infinity or NaN rather than an error.
func apply(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	case funcMin:
		return math.Min(a, b)
	default:
		// Unreachable: the builder only emits the operators above.
		return math.NaN()
	}
}
