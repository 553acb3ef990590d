// Package debug provides opt-in debug logging for scopestyle.
// Logging is only enabled when the debug flag or config key is set. The theme
// engine reports recovered problems (malformed colours, unknown colour spaces,
// registry evictions) here instead of failing.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".scopestyle"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *log.Logger
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init initializes the debug logging system at the default location
// (~/.scopestyle/debug.log). If enable is false, logging becomes a no-op.
func Init(enable bool) error {
	if !enable {
		return InitWriter(nil)
	}
	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}
	return InitPath(logPath)
}

// InitPath enables logging to the given file, truncating it.
func InitPath(logPath string) error {
	dir := filepath.Dir(logPath)
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: Log path comes from config or the user's home
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	if err := InitWriter(f); err != nil {
		_ = f.Close()
		return err
	}

	mu.Lock()
	logFile = f
	mu.Unlock()
	return nil
}

// InitWriter enables logging to w. A nil writer disables logging.
func InitWriter(w io.Writer) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	if w == nil {
		enabled = false
		logger = log.New(io.Discard, "", 0)
		return nil
	}

	enabled = true
	logger = log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	logger.Printf("=== scopestyle debug log started at %s ===", time.Now().Format(time.RFC3339))
	return nil
}

// Close closes the debug log file if open and disables logging.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}

// Log writes a debug message if debug logging is enabled.
// Arguments are handled in the manner of fmt.Print.
func Log(v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Print(v...)
}

// Logf writes a formatted debug message if debug logging is enabled.
// Arguments are handled in the manner of fmt.Printf.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Printf(format, v...)
}

// Enabled returns whether debug logging is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// defaultGetLogPath returns the path to the debug log file.
func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the default path to the debug log file.
func GetLogPath() (string, error) {
	return getLogPath()
}
