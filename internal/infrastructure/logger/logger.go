package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

// SlogLogger adapts a structured slog.Logger to the printf-style app logger.
type SlogLogger struct {
	logger *slog.Logger
}

var _ usecasecontract.IAppLogger = (*SlogLogger)(nil)

// NewSlogLogger creates a JSON logger writing to stdout at the given level.
func NewSlogLogger(level string) *SlogLogger {
	return NewSlogLoggerTo(os.Stdout, level)
}

// NewSlogLoggerTo is NewSlogLogger with an explicit destination.
func NewSlogLoggerTo(w io.Writer, level string) *SlogLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &SlogLogger{logger: slog.New(handler)}
}

// ParseLevel maps a config value to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog exposes the underlying logger for structured call sites.
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// Debugf logs a debug message.
func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Infof logs an info message.
func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *SlogLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Warningf logs a warning message.
func (l *SlogLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs a fatal message and exits.
func (l *SlogLogger) Fatalf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
