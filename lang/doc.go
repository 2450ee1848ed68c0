// Package lang implements the configuration constant language: lexing,
// parsing, and evaluation of named constants whose values are numbers,
// nested dictionaries, or postfix arithmetic expressions.
//
// The pipeline is tokenize → parse → build → evaluate, driven through a
// [Translator]. Evaluation is strictly sequential: an expression may only
// reference constants declared earlier in the document. The result is an
// ordered [Config] ready for output encoding.
//
// All failures wrap one of the package's sentinel errors (ErrLex,
// ErrSyntax, ErrDuplicateKey, ...) so callers can classify them with
// errors.Is; the wrapped errors carry slog attributes locating the
// offending construct.
package lang
