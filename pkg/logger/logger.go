package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Fields carries structured context for a log line.
type Fields map[string]any

// Logger is the logging interface used by the lookup pipeline.
// Implementations must never write to stdout: stdout carries the launcher document.
type Logger interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Debug(msg string, fields Fields)
	Error(msg string, fields Fields)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Error(string, Fields) {}

type writerLogger struct {
	w         io.Writer
	component string
	now       func() time.Time
}

// NewWriterLogger builds a logger that writes to an io.Writer, tagging every
// line with component.
func NewWriterLogger(w io.Writer, component string) Logger {
	return writerLogger{w: w, component: component, now: time.Now}
}

func (l writerLogger) write(level, msg string, fields Fields) {
	if l.w == nil {
		return
	}

	prefix := fmt.Sprintf("%s %-5s", l.now().Format(time.RFC3339), level)
	if l.component != "" {
		prefix += " [" + l.component + "]"
	}
	if len(fields) == 0 {
		_, _ = fmt.Fprintf(l.w, "%s %s\n", prefix, msg)
		return
	}

	b, err := json.Marshal(fields)
	if err != nil {
		_, _ = fmt.Fprintf(l.w, "%s %s fields=%q\n", prefix, msg, fmt.Sprintf("%+v", map[string]any(fields)))
		return
	}
	_, _ = fmt.Fprintf(l.w, "%s %s fields=%s\n", prefix, msg, b)
}

func (l writerLogger) Info(msg string, fields Fields)  { l.write("INFO", msg, fields) }
func (l writerLogger) Warn(msg string, fields Fields)  { l.write("WARN", msg, fields) }
func (l writerLogger) Debug(msg string, fields Fields) { l.write("DEBUG", msg, fields) }
func (l writerLogger) Error(msg string, fields Fields) { l.write("ERROR", msg, fields) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, fields Fields) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, fields)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, fields Fields) {
	if logger == nil {
		return
	}
	logger.Warn(msg, fields)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, fields Fields) {
	if logger == nil {
		return
	}
	logger.Error(msg, fields)
}
