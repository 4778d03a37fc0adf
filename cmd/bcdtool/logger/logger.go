// Package logger provides bcdtool's structured logging. Output is discarded
// by default; --verbose switches to a per-invocation log file under the
// configured log directory, tagged with the BCD operation being run.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// L is the global logger instance, discarding output until Init is called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix  = "bcdtool-"
	logSuffix  = ".log"
	maxLogRuns = 20 // bcdtool runs once per invocation, so retain by run count, not by calendar age.
)

// Options configures logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded.
	LogDir  string     // Directory for log files. Default: ~/.bcdtool/logs
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled.
}

// Init configures logging. Call from main() before any log calls, after
// flags are parsed. It also installs L as slog's default logger, so
// pkg/bcd's mapper-level Debug logging (skip decisions during LoadFromHive)
// routes through the same sink as the CLI's own operation logs.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(L)
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".bcdtool", "logs")
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	pruneOldRuns(logDir)

	filename := filepath.Join(logDir, fmt.Sprintf("%s%s-%d%s", logPrefix, time.Now().Format("20060102-150405"), os.Getpid(), logSuffix))
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level, AddSource: true}))
	slog.SetDefault(L)
	return nil
}

// pruneOldRuns keeps only the maxLogRuns most recently created run logs,
// deleting the rest. Unlike a long-lived interactive process, bcdtool opens
// one log file per invocation, so pruning by calendar age would let a
// heavily-used machine accumulate thousands of tiny files in a single day.
func pruneOldRuns(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var runs []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, logPrefix) && strings.HasSuffix(name, logSuffix) {
			runs = append(runs, name)
		}
	}
	if len(runs) <= maxLogRuns {
		return
	}

	sort.Strings(runs) // the timestamp-then-pid naming sorts oldest-first lexically
	for _, name := range runs[:len(runs)-maxLogRuns] {
		os.Remove(filepath.Join(logDir, name))
	}
}

// WithOp returns a logger carrying the BCD operation name and the hive path
// it's operating on, for subcommands to attach as structured context to
// every log line they emit for the duration of a single run.
func WithOp(op, hivePath string) *slog.Logger {
	return L.With("op", op, "hive", hivePath)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
