package lang

import "github.com/confix-lang/confix/log"

// Translator turns source text into evaluated configurations. The zero
// value is not usable; construct one with NewTranslator. A Translator is
// immutable and safe for reuse across inputs.
type Translator struct {
	log    log.Logger
	strict bool
}

// Option configures a Translator at construction.
type Option func(*Translator)

// WithLogger routes the translator's diagnostics to logger instead of the
// package default logger.
func WithLogger(logger log.Logger) Option {
	return func(t *Translator) { t.log = logger }
}

// WithStrictRedefine makes redeclaring a top-level constant an error
// (ErrRedefined). By default a redeclaration replaces the earlier binding
// in place and logs a warning.
func WithStrictRedefine() Option {
	return func(t *Translator) { t.strict = true }
}

// NewTranslator returns a Translator with the given options applied.
func NewTranslator(opts ...Option) Translator {
	t := Translator{log: log.Default()}

	for _, opt := range opts {
		opt(&t)
	}

	return t
}

// Parse tokenizes and parses source into its declaration list without
// evaluating anything. Dictionary keys are checked for duplicates.
func (t Translator) Parse(source string) ([]Decl, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}

	tree, err := parse(tokens)
	if err != nil {
		return nil, err
	}

	return buildProgram(tree)
}

// Translate parses and evaluates source, returning the resolved
// configuration. It fails on the first error encountered.
func (t Translator) Translate(source string) (*Config, error) {
	decls, err := t.Parse(source)
	if err != nil {
		return nil, err
	}

	eval := &evaluator{log: t.log, strict: t.strict}

	return eval.evaluate(decls)
}

// Translate parses and evaluates source with a default Translator.
func Translate(source string) (*Config, error) {
	return NewTranslator().Translate(source)
}
