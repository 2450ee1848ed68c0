package cmd

import (
	"context"
	"log/slog"

	"github.com/confix-lang/confix/emit"
	"github.com/confix-lang/confix/lang"
	"github.com/confix-lang/confix/log"
)

// Translate reads a source document, evaluates it, and writes the XML
// encoding of the result.
type Translate struct {
	Input  string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"input"`
	Output string `help:"Output file or '-' for stdout." required:"" short:"o"`
	Indent int    `default:"2" help:"Indent width for XML output."     short:"i"`
	Strict bool   `help:"Fail when a top-level constant is redefined."`
}

// Run executes the translate command.
func (t *Translate) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := readSource(t.Input)
	if err != nil {
		return err
	}

	cfg, err := translator(t.Strict).Translate(source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("input", t.Input))
	}

	out, closeOut, err := openOutput(t.Output)
	if err != nil {
		return err
	}

	err = emit.Write(out, cfg, t.Indent)
	if err != nil {
		closeOut() //nolint:errcheck

		return err
	}

	err = closeOut()
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "translated",
		slog.String("input", t.Input),
		slog.String("output", t.Output),
		slog.Int("constants", cfg.Len()),
	)

	return nil
}
