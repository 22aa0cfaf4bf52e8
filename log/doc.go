// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("order accepted", slog.String("order", "123"))
//
// # Configuration
//
// Options are applied when the logger is made:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithPretty(true))
//
// [Logger.Wrap] derives a new logger from an existing one, and [Config]
// does the same for the process-wide logger used by the package-level
// functions ([Info], [ErrorContext], ...).
//
// # Levels and Formats
//
// Five levels are supported, from [LevelTrace] to [LevelError]; messages
// below the configured level are discarded. Output is JSON ([FormatJSON],
// the default) or key=value text ([FormatText]). Pretty text output colors
// keys and values with lipgloss when the writer is a terminal.
//
// # Zero Value
//
// A zero [Logger] discards everything. Library code holds one by value and
// lets callers inject a configured logger.
package log
