// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable minimum level, output format, time
// formatting, and caller information, all applied with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("translation complete", slog.Int("constants", n))
//
// A zero-value Logger is valid and discards all messages, which lets library
// code accept an optional logger without nil checks.
//
// The package also maintains a default logger used by the package-level
// functions ([Config], [Debug], [Info], [Warn], [Error], and their Context
// variants). The CLI reconfigures the default logger from command-line flags.
package log
