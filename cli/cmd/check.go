package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/confix-lang/confix/lang"
)

// Check parses and evaluates a source document, reporting success or the
// first error, without producing any output document.
type Check struct {
	Input  string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"input"`
	Strict bool   `help:"Fail when a top-level constant is redefined."`
}

// Run executes the check command. On valid input it prints a one-line
// summary to stdout; on invalid input the error carries the diagnosis.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := readSource(c.Input)
	if err != nil {
		return err
	}

	cfg, err := translator(c.Strict).Translate(source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("input", c.Input))
	}

	fmt.Println(c.summary(cfg))

	return nil
}

// summary renders the one-line validity report for a resolved configuration.
func (c *Check) summary(cfg *lang.Config) string {
	noun := "constants"
	if cfg.Len() == 1 {
		noun = "constant"
	}

	return fmt.Sprintf("%s: valid (%d %s)", c.Input, cfg.Len(), noun)
}
