// Package logger provides the process logger for the chemformula command.
// The library packages never log; only the command does.
package logger

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used by the command.
var Logger *log.Logger

func init() {
	Logger = newLogger(os.Stderr, log.InfoLevel)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New(w)
	l.SetTimeFormat("")
	l.SetLevel(level)
	return l
}

// Configure replaces the global logger with one writing to w at the given
// level. An empty level means info. Unknown levels are an error, and the
// logger is left unchanged.
func Configure(level string, w io.Writer) error {
	lvl := log.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		lvl, err = log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return err
		}
	}
	if w == nil {
		w = os.Stderr
	}
	Logger = newLogger(w, lvl)
	return nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// InputRejected logs a formula or CAS number that could not be used. The
// position is included when the error carries one.
func InputRejected(kind, input string, err error) {
	kv := []interface{}{kind, input, "error", err}
	var p interface{ Pos() int }
	if errors.As(err, &p) {
		kv = append(kv, "col", p.Pos())
	}
	Warn("Skipping invalid input", kv...)
}
