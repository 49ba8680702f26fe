package libloc

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Diagnostics are opt-in: a Locations with no logger configured uses a
// discard handler, so the hot lookup path never touches log/slog unless
// the caller asked for it (SPEC_FULL.md §4.7).
func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// rotatingFileHandler builds a JSON slog handler backed by a
// size/age-rotated file, mirroring the CLI logging setup this library's
// teacher uses for its own log files.
func rotatingFileHandler(path string, maxSizeMB, maxBackups int, level slog.Level) slog.Handler {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxBackups <= 0 {
		maxBackups = 5
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     30,
		Compress:   true,
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
