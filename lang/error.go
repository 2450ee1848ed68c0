package lang

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values). Every failure returned by this
// package wraps exactly one of these, so callers can classify failures with
// errors.Is.
var (
	// ErrLex reports an unrecognized byte or unterminated block comment.
	ErrLex = NewError("lexical error")

	// ErrSyntax reports a token sequence that does not match the grammar.
	ErrSyntax = NewError("syntax error")

	// ErrDuplicateKey reports a repeated key within one dictionary literal.
	ErrDuplicateKey = NewError("duplicate key in dictionary")

	// ErrUnknownConstant reports an expression reference to a name that is
	// not yet declared.
	ErrUnknownConstant = NewError("unknown constant in expression")

	// ErrNonNumericReference reports an expression reference to a name bound
	// to a dictionary.
	ErrNonNumericReference = NewError("constant is not numeric")

	// ErrArity reports an operator or function with fewer than two stack
	// operands.
	ErrArity = NewError("missing operands")

	// ErrMalformedExpression reports an expression that does not reduce to
	// exactly one value.
	ErrMalformedExpression = NewError("expression did not reduce to a single value")

	// ErrRedefined reports a redeclared top-level constant when strict
	// redefinition checking is enabled.
	ErrRedefined = NewError("constant redefined")

	errUnterminatedComment = errors.New("unterminated block comment")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2+len(e.attrs))

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	// Attributes identify the offending construct in the flat message too,
	// not just in structured log output.
	for _, a := range e.attrs {
		part = append(part, a.Key+"="+a.Value.String())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches errors that share this error's message, so derived errors
// created with With or Wrap still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// at returns position attributes for diagnostics.
func at(pos Position) []slog.Attr {
	return []slog.Attr{
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
	}
}
