package log

import (
	"io"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return slog.Level(l).String()
	}
}

// Levels returns an iterator over all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelTrace,
			LevelDebug,
			LevelInfo,
			LevelWarn,
			LevelError,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "trace", "debug", "info", "warn", and "error",
// case-insensitive. Unrecognized strings return [DefaultLevel].
func ParseLevel(s string) Level {
	// slog.Level.UnmarshalText doesn't recognize "trace"
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace
	}

	l := new(slog.Level)

	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// Formats returns an iterator over all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{FormatText, FormatJSON} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses a string representation of a log format.
// Valid format strings are "json" and "text".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// DefaultTimeLayout is the default used when no valid time layout is
// provided.
const DefaultTimeLayout = time.RFC3339

// DefaultCaller is the default setting for including caller information in
// log output.
const DefaultCaller = false

// DefaultPretty is the default setting for colorized text output.
const DefaultPretty = true

// config holds the configuration options for a Logger.
type config struct {
	mutex      *sync.RWMutex
	output     io.Writer
	timeLayout string
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(w io.Writer, opts ...Option) config {
	var c config

	c.mutex = &sync.RWMutex{}

	return apply(apply(c, WithDefaults(w)), opts...)
}

// clone creates a copy of the config with a separate mutex and applies any
// provided options.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

// handler creates a slog.Handler based on the current configuration.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					if c.timeLayout == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(t.Format(c.timeLayout))
				}
			}

			// Show "TRACE" instead of slog's "DEBUG-4".
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(
						strings.ToUpper(Level(level).String()),
					)
				}
			}

			return a
		},
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	case FormatText:
		if c.pretty {
			return newPrettyTextHandler(c.output, opts)
		}

		return slog.NewTextHandler(c.output, opts)

	default:
		return slog.DiscardHandler
	}
}

// WithDefaults returns a functional option that resets the configuration to
// its defaults: [DefaultLevel], [DefaultFormat], [DefaultTimeLayout],
// [DefaultCaller], and [DefaultPretty].
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		defer c.lock()()

		c.output = w
		c.timeLayout = resolveTimeLayout(DefaultTimeLayout)
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty

		return c
	}
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log messages. A nil writer is replaced with [io.Discard].
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		defer c.lock()()

		c.output = w

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		defer c.lock()()

		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the output format for log
// messages.
func WithFormat(format Format) Option {
	return func(c config) config {
		defer c.lock()()

		c.format = format

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout may be one of the named layouts from the [time] package (for
// example "RFC3339" or "Kitchen", case-insensitive); anything else is passed
// verbatim to [time.Time.Format]. An empty layout disables timestamps.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		resolved := resolveTimeLayout(layout)

		defer c.lock()()

		c.timeLayout = resolved

		return c
	}
}

// WithCaller returns a functional option that controls whether caller
// information is included in log output.
func WithCaller(enable bool) Option {
	return func(c config) config {
		defer c.lock()()

		c.caller = enable

		return c
	}
}

// WithPretty returns a functional option that controls whether text output
// uses colors. It has no effect on JSON output.
func WithPretty(enable bool) Option {
	return func(c config) config {
		defer c.lock()()

		c.pretty = enable

		return c
	}
}

// lock acquires the config mutex, creating it first if the config is a zero
// value. The returned function releases the lock.
func (c *config) lock() (unlock func()) {
	if c.mutex == nil {
		c.mutex = &sync.RWMutex{}

		return func() {}
	}

	c.mutex.Lock()

	return c.mutex.Unlock
}

// namedTimeLayout maps lowercase layout names to their time package
// constants.
var namedTimeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822":      time.RFC822,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"none":        "",
}

func resolveTimeLayout(layout string) string {
	trimmed := strings.ToLower(strings.TrimSpace(layout))
	if trimmed == "" {
		return ""
	}

	if std, ok := namedTimeLayout[trimmed]; ok {
		return std
	}

	return layout
}
