/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package logging provides a leveled CLI logger with plain, colored, and JSON
// output formats. All logging should go through the context-based functions
// (InfoContext, WarnContext, etc.) so the configured logger propagates through
// the application.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents the severity of a log message, ordered from least to most
// severe for numeric comparison.
type Level int

// Log levels.
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Format represents the output format for logs.
type Format int

// Output formats.
const (
	PlainFormat Format = iota
	ColorFormat
	JSONFormat
)

// Logger writes leveled messages to a console writer. Console filtering rules:
// quiet mode shows only errors, verbose mode shows everything, otherwise
// messages at InfoLevel and above are shown.
type Logger struct {
	mu      sync.Mutex
	Format  Format
	Quiet   bool
	Verbose bool
	Console io.Writer
}

// New creates a Logger with plain output on stderr.
func New() *Logger {
	return &Logger{Console: os.Stderr, Format: PlainFormat}
}

// NewWithOptions creates a Logger from the CLI-facing knobs: a log level
// string ("debug" enables verbose), an output format name ("text", "color",
// or "json"), and the quiet/verbose flags.
func NewWithOptions(levelStr, formatStr string, quiet, verbose bool) *Logger {
	format := PlainFormat
	switch formatStr {
	case "json":
		format = JSONFormat
	case "color":
		format = ColorFormat
	}

	if DetermineLogLevel(levelStr) == slog.LevelDebug {
		verbose = true
	}

	return &Logger{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		Console: os.Stderr,
	}
}

// DetermineLogLevel converts a level name to a slog.Level, defaulting to info.
func DetermineLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// visibleLocked reports whether a message at the given level should be shown.
// Must be called with l.mu held.
func (l *Logger) visibleLocked(level Level) bool {
	if l.Quiet {
		return level == ErrorLevel
	}
	if l.Verbose {
		return true
	}
	return level >= InfoLevel
}

func (l *Logger) formatMessage(level Level, message string, args ...interface{}) string {
	msg := fmt.Sprintf(message, args...)
	if l.Format != ColorFormat {
		return fmt.Sprintf("[%s] %s", level, msg)
	}

	switch level {
	case DebugLevel:
		return color.HiBlackString("[DEBUG] %s", msg)
	case InfoLevel:
		return color.HiGreenString("[INFO] %s", msg)
	case WarnLevel:
		return color.HiYellowString("[WARN] %s", msg)
	case ErrorLevel:
		return color.HiRedString("[ERROR] %s", msg)
	default:
		return msg
	}
}

func (l *Logger) log(level Level, message string, args ...interface{}) {
	line := l.formatMessage(level, message, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.visibleLocked(level) || l.Console == nil {
		return
	}
	if _, err := fmt.Fprintf(l.Console, "[%s] %s\n", timestamp, line); err != nil {
		// Fallback to stderr if the console writer fails
		fmt.Fprintf(os.Stderr, "[%s] %s\n", timestamp, line)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DebugLevel, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(InfoLevel, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WarnLevel, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ErrorLevel, format, args...)
}

// ErrorErr logs an error value directly without formatting.
func (l *Logger) ErrorErr(err error) {
	if err != nil {
		l.log(ErrorLevel, "%s", err.Error())
	}
}

// Output sends user-facing data to stdout, honoring the JSON output format.
func (l *Logger) Output(data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Format == JSONFormat {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode JSON output: %v\n", err)
		}
		return
	}
	fmt.Fprintln(os.Stdout, data)
}

// Print writes raw output to stdout without adding a newline. Use this for
// preformatted output that already contains newlines.
func (l *Logger) Print(data string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(os.Stdout, data)
}

// loggerKeyType is the type for the logger context key
type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// WithLogger returns a new context carrying the provided logger.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger from the context, or a default logger if
// none is present.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*Logger); ok && l != nil {
			return l
		}
	}
	return New()
}

// DebugContext logs a debug message using the logger from context.
func DebugContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Debug(message, args...)
}

// InfoContext logs an informational message using the logger from context.
func InfoContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Info(message, args...)
}

// WarnContext logs a warning message using the logger from context.
func WarnContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Warn(message, args...)
}

// ErrorContext logs an error message using the logger from context.
func ErrorContext(ctx context.Context, message string, args ...interface{}) {
	FromContext(ctx).Error(message, args...)
}

// ErrorErrContext logs an error value using the logger from context.
func ErrorErrContext(ctx context.Context, err error) {
	FromContext(ctx).ErrorErr(err)
}

// OutputContext sends user-facing data to stdout using the logger from context.
func OutputContext(ctx context.Context, data interface{}) {
	FromContext(ctx).Output(data)
}

// PrintContext writes raw output to stdout using the logger from context.
func PrintContext(ctx context.Context, data string) {
	FromContext(ctx).Print(data)
}
