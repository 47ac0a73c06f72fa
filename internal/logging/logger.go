// Package logging provides slog-based module loggers with per-module
// levels and systemd journal output when running under systemd.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	moduleLoggers = make(map[string]*slog.Logger)
	globalConfig  = Config{Level: "info", Format: "text"}
	isInitialized bool
	mutex         sync.Mutex
)

// Config represents logging configuration.
type Config struct {
	Level   string            `toml:"level"`
	Format  string            `toml:"format"`
	Modules map[string]string `toml:"modules"`
}

// Initialize sets up the logging system. Loggers handed out before
// Initialize are recreated with the configured level and format.
func Initialize(config Config) {
	mutex.Lock()
	defer mutex.Unlock()

	globalConfig = config
	isInitialized = true

	for module := range moduleLoggers {
		moduleLoggers[module] = newModuleLogger(module)
	}

	slog.SetDefault(slog.New(createHandler(config.Format, levelFor(""))))
}

// GetLogger returns a logger for the specified module, creating it if
// needed.
func GetLogger(module string) *slog.Logger {
	mutex.Lock()
	defer mutex.Unlock()

	if logger, exists := moduleLoggers[module]; exists {
		return logger
	}

	logger := newModuleLogger(module)
	moduleLoggers[module] = logger
	return logger
}

// newModuleLogger builds a logger for the module using the current
// global config. Caller must hold mutex.
func newModuleLogger(module string) *slog.Logger {
	handler := createHandler(globalConfig.Format, levelFor(module))
	return slog.New(handler).With("module", module)
}

// levelFor resolves the effective level for a module, falling back to
// the global level and then info. Caller must hold mutex.
func levelFor(module string) slog.Level {
	if module != "" {
		if levelStr, exists := globalConfig.Modules[module]; exists {
			if parsed, ok := parseLevel(levelStr); ok {
				return parsed
			}
		}
	}
	if parsed, ok := parseLevel(globalConfig.Level); ok {
		return parsed
	}
	return slog.LevelInfo
}

// createHandler creates a handler writing to stderr and, when running
// under systemd, the journal.
func createHandler(format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	var stderrHandler slog.Handler
	if format == "json" {
		stderrHandler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		stderrHandler = slog.NewTextHandler(os.Stderr, opts)
	}

	if IsJournalAvailable() {
		return NewMultiHandler(stderrHandler, NewJournalHandler(level))
	}
	return stderrHandler
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
