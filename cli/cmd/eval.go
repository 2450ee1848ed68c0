package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/confix-lang/confix/emit"
	"github.com/confix-lang/confix/lang"
)

// Eval evaluates a source document and prints the resolved value of a
// single named constant. Numbers print in the XML text representation;
// dictionaries print as YAML, or as JSON with --json.
type Eval struct {
	Name   string `arg:"" help:"Constant to evaluate" name:"name"`
	Input  string `default:"-" help:"Source input file or '-' for stdin." short:"f"`
	JSON   bool   `help:"Print dictionaries as JSON instead of YAML."`
	Indent int    `default:"2" help:"Indent width for dictionary output." short:"i"`
	Strict bool   `help:"Fail when a top-level constant is redefined."`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := readSource(e.Input)
	if err != nil {
		return err
	}

	cfg, err := translator(e.Strict).Translate(source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("input", e.Input))
	}

	value, ok := cfg.Get(e.Name)
	if !ok {
		return lang.ErrUnknownConstant.With(
			slog.String("name", e.Name),
			slog.String("input", e.Input),
		)
	}

	if value.Kind == lang.TypeNumber {
		fmt.Println(emit.FormatNumber(value.Number))

		return nil
	}

	if e.JSON {
		return e.printJSON(value.Dict)
	}

	return e.printYAML(ctx, value.Dict)
}

func (e *Eval) printYAML(ctx context.Context, dict *lang.Config) error {
	opts := []yaml.EncodeOption{}
	if e.Indent > 0 {
		opts = append(opts, yaml.Indent(e.Indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, mapSlice(dict), opts...)
	if err != nil {
		return err
	}

	fmt.Print(string(data))

	return nil
}

func (e *Eval) printJSON(dict *lang.Config) error {
	var (
		data []byte
		err  error
	)

	if e.Indent > 0 {
		data, err = json.MarshalIndent(
			plainMap(dict), "", strings.Repeat(" ", e.Indent),
		)
	} else {
		data, err = json.Marshal(plainMap(dict))
	}

	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}

// mapSlice converts an evaluated dictionary to an order-preserving YAML
// mapping.
func mapSlice(dict *lang.Config) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, dict.Len())

	for name, value := range dict.All() {
		item := yaml.MapItem{Key: name}

		if value.Kind == lang.TypeNumber {
			item.Value = value.Number
		} else {
			item.Value = mapSlice(value.Dict)
		}

		ms = append(ms, item)
	}

	return ms
}

// plainMap converts an evaluated dictionary for JSON encoding. Key order is
// not preserved; encoding/json sorts keys lexically.
func plainMap(dict *lang.Config) map[string]any {
	m := make(map[string]any, dict.Len())

	for name, value := range dict.All() {
		if value.Kind == lang.TypeNumber {
			m[name] = value.Number
		} else {
			m[name] = plainMap(value.Dict)
		}
	}

	return m
}
