package config

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates the process logger: text to stderr (debug level when
// verbose), plus a JSON fanout to the file named by CITREND_LOG_FILE when
// set. The returned cleanup closes the file.
func SetupLogger(verbose bool) (*slog.Logger, func() error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	logFile := os.Getenv("CITREND_LOG_FILE")
	if logFile == "" {
		return slog.New(stderrHandler), func() error { return nil }
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Error("failed to open log file, using stderr only", "error", err, "file", logFile)
		return slog.New(stderrHandler), func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler)), file.Close
}
