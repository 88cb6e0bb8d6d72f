// Package logger provides structured JSON logging for the tracker
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Level represents the severity level of a log message
type Level string

const (
	// DebugLevel is used for development messages
	DebugLevel Level = "DEBUG"
	// InfoLevel is used for general operational information
	InfoLevel Level = "INFO"
	// WarnLevel is used for rejected input and recoverable problems
	WarnLevel Level = "WARN"
	// ErrorLevel is used for errors and unexpected events
	ErrorLevel Level = "ERROR"
	// FatalLevel is used for critical errors that require termination
	FatalLevel Level = "FATAL"
)

// ParseLevel converts a case-insensitive level name, defaulting to InfoLevel
func ParseLevel(s string) Level {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case DebugLevel:
		return DebugLevel
	case WarnLevel:
		return WarnLevel
	case ErrorLevel:
		return ErrorLevel
	case FatalLevel:
		return FatalLevel
	default:
		return InfoLevel
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger defines the interface for the application logger
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	Fatal(msg string, fields map[string]interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// JSONLogger writes one JSON object per line through zerolog
type JSONLogger struct {
	zl zerolog.Logger
}

func init() {
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}
}

// NewJSONLogger creates a new JSON logger
func NewJSONLogger(output io.Writer, level Level) *JSONLogger {
	if output == nil {
		output = os.Stdout
	}

	zl := zerolog.New(output).
		Level(level.zerolog()).
		With().
		Timestamp().
		CallerWithSkipFrameCount(4).
		Logger()

	return &JSONLogger{zl: zl}
}

// WithField returns a new logger with the field added to the log context
func (l *JSONLogger) WithField(key string, value interface{}) Logger {
	return &JSONLogger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a new logger with the fields added to the log context
func (l *JSONLogger) WithFields(fields map[string]interface{}) Logger {
	if len(fields) == 0 {
		return l
	}
	return &JSONLogger{zl: l.zl.With().Fields(fields).Logger()}
}

// Debug logs a message at debug level
func (l *JSONLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(l.zl.Debug(), msg, fields)
}

// Info logs a message at info level
func (l *JSONLogger) Info(msg string, fields map[string]interface{}) {
	l.log(l.zl.Info(), msg, fields)
}

// Warn logs a message at warn level
func (l *JSONLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(l.zl.Warn(), msg, fields)
}

// Error logs a message at error level
func (l *JSONLogger) Error(msg string, fields map[string]interface{}) {
	l.log(l.zl.Error(), msg, fields)
}

// Fatal logs a message at fatal level and then terminates the program
func (l *JSONLogger) Fatal(msg string, fields map[string]interface{}) {
	l.log(l.zl.WithLevel(zerolog.FatalLevel), msg, fields)
	os.Exit(1)
}

// log sends an event; a nil event means the level is disabled
func (l *JSONLogger) log(event *zerolog.Event, msg string, fields map[string]interface{}) {
	if event == nil {
		return
	}
	event.Fields(fields).Msg(msg)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
func (NopLogger) Fatal(string, map[string]interface{}) { os.Exit(1) }

func (n NopLogger) WithField(string, interface{}) Logger     { return n }
func (n NopLogger) WithFields(map[string]interface{}) Logger { return n }

var defaultLogger Logger = NewJSONLogger(os.Stdout, InfoLevel)

// GetDefaultLogger returns the default logger
func GetDefaultLogger() Logger {
	return defaultLogger
}

// SetDefaultLogger sets the default logger
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Info logs through the default logger
func Info(msg string, fields map[string]interface{}) {
	defaultLogger.Info(msg, fields)
}

// Error logs through the default logger
func Error(msg string, fields map[string]interface{}) {
	defaultLogger.Error(msg, fields)
}

// Fatal logs through the default logger and exits
func Fatal(msg string, fields map[string]interface{}) {
	defaultLogger.Fatal(msg, fields)
}
