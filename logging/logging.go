package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when none is configured
const DefaultMaxLogFiles = 100

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug logging, so library
// users never have to set it up.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls where debug logs go
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
}

// Initialize sets up the logger and returns the log file path ("" when disabled).
// ARUBA_DEBUG, ARUBA_DEBUG_FILE and ARUBA_MAX_LOG_FILES fill in unset options.
func Initialize(opts Options) (string, error) {
	opts = applyEnv(opts)

	if !opts.Debug && opts.DebugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath, err := resolveLogFile(opts)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", logFilePath, "pid", os.Getpid())

	return logFilePath, nil
}

func applyEnv(opts Options) Options {
	if os.Getenv("ARUBA_DEBUG") == "1" {
		opts.Debug = true
	}
	if opts.DebugFile == "" {
		opts.DebugFile = os.Getenv("ARUBA_DEBUG_FILE")
	}
	if opts.MaxLogFiles == 0 {
		opts.MaxLogFiles = DefaultMaxLogFiles
		if parsed, err := strconv.Atoi(os.Getenv("ARUBA_MAX_LOG_FILES")); err == nil {
			opts.MaxLogFiles = parsed
		}
	}
	return opts
}

func resolveLogFile(opts Options) (string, error) {
	// A custom file is never rotated
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs deletes the oldest .log files so that one more fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".log" {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	modTime := func(e os.DirEntry) int64 {
		info, err := e.Info()
		if err != nil {
			return 0
		}
		return info.ModTime().UnixNano()
	}
	sort.Slice(logFiles, func(i, j int) bool {
		return modTime(logFiles[i]) < modTime(logFiles[j])
	})

	for _, entry := range logFiles[:len(logFiles)-maxLogFiles+1] {
		path := filepath.Join(logDir, entry.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "aruba"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "aruba"), nil
	default:
		return filepath.Join(homeDir, ".aruba", "logs"), nil
	}
}
