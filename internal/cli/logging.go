package cli

import (
	"io"
	"log/slog"
)

// newLogger builds the text logger used for progress output.
// Debug level is enabled with --verbose.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
