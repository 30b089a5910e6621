// Package logger provides leveled logging with support for debug, info, warn, and error levels.
// Output is either plain text lines or one JSON object per line.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review.
	WarnLevel
	// ErrorLevel logs are high-priority.
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a config string to a Level, defaulting to InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger provides leveled logging
type Logger struct {
	mu     sync.Mutex
	level  Level
	json   bool
	out    io.Writer
	logger *log.Logger
}

var defaultLogger = New(os.Stderr, "info", "text")

// New creates a logger writing to out.
func New(out io.Writer, level, format string) *Logger {
	l := &Logger{
		level: ParseLevel(level),
		json:  strings.ToLower(format) == "json",
		out:   out,
	}
	if !l.json {
		l.logger = log.New(out, "", log.LstdFlags|log.Lmicroseconds)
	}
	return l
}

// Init replaces the default logger with the specified level and format
func Init(level string, format string) {
	defaultLogger = New(os.Stderr, level, format)
}

// SetOutput redirects the default logger, keeping its level and format.
func SetOutput(out io.Writer) {
	format := "text"
	if defaultLogger.json {
		format = "json"
	}
	defaultLogger = New(out, defaultLogger.level.String(), format)
}

type entry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"msg"`
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !l.json {
		_ = l.logger.Output(3, "["+level.String()+"] "+msg)
		return
	}

	b, err := json.Marshal(entry{
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		Level:   strings.ToLower(level.String()),
		Message: msg,
	})
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(append(b, '\n'))
}

// Debug logs a message at DebugLevel
func Debug(format string, args ...interface{}) {
	defaultLogger.log(DebugLevel, format, args...)
}

// Info logs a message at InfoLevel
func Info(format string, args ...interface{}) {
	defaultLogger.log(InfoLevel, format, args...)
}

// Warn logs a message at WarnLevel
func Warn(format string, args ...interface{}) {
	defaultLogger.log(WarnLevel, format, args...)
}

// Error logs a message at ErrorLevel
func Error(format string, args ...interface{}) {
	defaultLogger.log(ErrorLevel, format, args...)
}

// Fatal logs a message at ErrorLevel and exits
func Fatal(format string, args ...interface{}) {
	defaultLogger.log(ErrorLevel, "[FATAL] "+format, args...)
	os.Exit(1)
}
