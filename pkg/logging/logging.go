// Package logging configures the standard logger for the frame: stderr
// always, plus a rotating log file when a directory is given.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogFileName = "tv-frame.log"

	DefaultMaxSize    = 10 // megabytes
	DefaultMaxBackups = 3
	DefaultMaxAge     = 28 // days
)

// Options configures Setup
type Options struct {
	Dir     string // empty disables file logging
	Verbose bool
}

var (
	lumberjackLogger *lumberjack.Logger
	logPath          string
	verbose          bool
)

// Setup points the standard logger at stderr and, when opts.Dir is set, at
// a rotating file inside it.
func Setup(opts Options) error {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	verbose = opts.Verbose

	Close()
	logPath = ""

	if opts.Dir == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}

	logPath = filepath.Join(opts.Dir, LogFileName)
	lumberjackLogger = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   true,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, lumberjackLogger))
	log.Printf("Logging to %s", logPath)
	return nil
}

// GetLogPath returns the current log file, or "" when only stderr is used
func GetLogPath() string {
	return logPath
}

// Debugf logs only when verbose output was requested
func Debugf(format string, args ...any) {
	if verbose {
		log.Output(2, fmt.Sprintf("[DEBUG] "+format, args...))
	}
}

// Close flushes and closes the log file, if any
func Close() {
	if lumberjackLogger != nil {
		log.SetOutput(os.Stderr)
		lumberjackLogger.Close()
		lumberjackLogger = nil
	}
}
