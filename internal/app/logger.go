package app

import (
	"io"
	"log/slog"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds an isolated slog.Logger writing to errW. The global
// logger is left untouched so tests can run apps side by side. Unknown
// levels fall back to info; the CLI rejects them earlier.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(errW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(errW, handlerOpts)
	}

	return slog.New(handler)
}
