package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/confix-lang/confix/cli/cmd"
	"github.com/confix-lang/confix/pkg"
)

// CLI is the top-level command-line interface for confix.
type CLI struct {
	Log     logConfig        `embed:"" group:"log"   prefix:"log-"`
	Pprof   pprofConfig      `embed:"" group:"pprof" prefix:"pprof-"`
	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Translate cmd.Translate `cmd:"" default:"withargs" help:"Translate source to XML"`
	Check     cmd.Check     `cmd:"" help:"Validate source without producing output"`
	Eval      cmd.Eval      `cmd:"" help:"Evaluate a single constant"`
}

// Run executes the confix CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so early diagnostics, including kong parse
	// errors, already use the requested level and format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Vars{"version": pkg.Name + " " + strings.TrimSpace(pkg.Version)},
		cli.Pprof.vars(),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values, including flags
	// that do not pass through TextUnmarshaler.
	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
