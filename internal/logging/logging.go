package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// FilePath is the path to the log file. Empty means no file logging.
	FilePath string
	// MaxSizeMB is the maximum size in MB before rotation (default: 10).
	MaxSizeMB int
	// MaxFiles is the maximum number of rotated files to keep (default: 5).
	MaxFiles int
	// EchoStderr mirrors records to stderr. Off by default so piped
	// output stays clean; debug mode turns it on.
	EchoStderr bool
}

// DefaultConfig returns file-only logging at info level.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		FilePath:  DefaultLogPath(),
		MaxSizeMB: 10,
		MaxFiles:  5,
	}
}

// DebugConfig returns the configuration used by the --debug flag:
// debug level, mirrored to stderr.
func DebugConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.EchoStderr = true
	return cfg
}

// Setup initializes file-based logging. The returned cleanup function
// flushes and closes the log file and should run when the command ends.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	if err := EnsureLogDir(); err != nil {
		return nil, nil, err
	}

	writer, err := NewRotatingWriter(cfg.FilePath, cfg.MaxSizeMB, cfg.MaxFiles)
	if err != nil {
		return nil, nil, err
	}

	var output io.Writer = writer
	if cfg.EchoStderr {
		output = io.MultiWriter(writer, os.Stderr)
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: LevelFromString(cfg.Level),
	})

	cleanup := func() {
		_ = writer.Sync()
		_ = writer.Close()
	}

	return slog.New(handler), cleanup, nil
}

// LevelFromString converts a level name to slog.Level. Unknown names
// fall back to info.
func LevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
