package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"
)

// Logger provides a concurrency-safe simplified logging interface.
//
// The zero value is valid and discards all messages.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to the specified writer.
// Optional configuration can be applied using functional options like
// [WithFormat], [WithLevel], [WithTimeLayout], [WithCaller], and
// [WithPretty].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] based on the current logger with the provided
// configuration options applied on top of its existing configuration.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.config.mutex != nil {
		l.config.mutex.RLock()
		defer l.config.mutex.RUnlock()
	}

	cfg := l.config.clone(opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// With returns a new [Logger] that includes the given attributes in each log
// message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		config: l.config,
		Logger: slog.New(l.Logger.Handler().WithAttrs(attrs)),
	}
}

// Level returns the current minimum log level.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the current log output format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

// TraceContext logs a message at Trace level with the provided context.
func (l Logger) TraceContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.TraceContext(DefaultContextProvider(), msg, attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.DebugContext(DefaultContextProvider(), msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.InfoContext(DefaultContextProvider(), msg, attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func (l Logger) WarnContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.WarnContext(DefaultContextProvider(), msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.ErrorContext(DefaultContextProvider(), msg, attrs...)
}

// logContext writes a log message at the specified level with the provided
// context.
func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return
	}

	if !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr
	// Skip 4 frames to get to the actual caller:
	// 1=runtime.Callers, 2=logContext, 3=*Context method, 4=wrapper
	runtime.Callers(4, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

// DefaultContextProvider returns the default context used by context-unaware
// logging functions.
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

//nolint:gochecknoglobals
var (
	defaultMutex sync.RWMutex
	defaultLog   = Make(os.Stderr)
)

// Default returns the package default logger.
func Default() Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultLog
}

// Init initializes the package default logger to write to w with the given
// options. It replaces any prior default configuration.
func Init(w io.Writer, opts ...Option) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLog = Make(w, opts...)
}

// Config updates the package default logger with the given options.
// If the default logger has not been initialized, it writes to [io.Discard].
func Config(opts ...Option) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	if defaultLog.Logger == nil {
		defaultLog = Make(io.Discard)
	}

	defaultLog = defaultLog.Wrap(opts...)
}

// TraceContext logs a message at Trace level using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Trace logs a message at Trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	TraceContext(DefaultContextProvider(), msg, attrs...)
}

// DebugContext logs a message at Debug level using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	DebugContext(DefaultContextProvider(), msg, attrs...)
}

// InfoContext logs a message at Info level using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	InfoContext(DefaultContextProvider(), msg, attrs...)
}

// WarnContext logs a message at Warn level using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	WarnContext(DefaultContextProvider(), msg, attrs...)
}

// ErrorContext logs a message at Error level using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	ErrorContext(DefaultContextProvider(), msg, attrs...)
}
