package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/confix-lang/confix/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so the format takes effect before command
// execution begins.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"warn"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags from args before kong parses them, so the
// logger is configured correctly regardless of flag position. Value flags
// accept both "--flag=value" and "--flag value" forms.
func (f *logConfig) scan(args []string) {
	value := func(i int) (string, int) {
		arg := args[i]
		if eq := strings.IndexByte(arg, '='); eq >= 0 {
			return arg[eq+1:], i
		}

		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return args[i+1], i + 1
		}

		return "", i
	}

	for i := 0; i < len(args); i++ {
		name, _, _ := strings.Cut(args[i], "=")

		switch name {
		case "--log-level":
			var v string
			v, i = value(i)
			_ = f.Level.UnmarshalText([]byte(v))

		case "--log-format":
			var v string
			v, i = value(i)
			_ = f.Format.UnmarshalText([]byte(v))

		case "--log-pretty":
			log.Config(log.WithPretty(true))

		case "--no-log-pretty":
			log.Config(log.WithPretty(false))

		case "--log-caller":
			log.Config(log.WithCaller(true))

		case "--no-log-caller":
			log.Config(log.WithCaller(false))
		}
	}
}
