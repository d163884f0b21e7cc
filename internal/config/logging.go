package config

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger configures the global slog logger.
//
// By default it logs at Info to stderr; verbose switches to Debug. A
// non-empty logPath routes output through a size-rotated file instead,
// so long batch runs don't grow an unbounded log.
func SetupLogger(logPath string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if logPath != "" {
		handler = slog.NewTextHandler(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MiB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
