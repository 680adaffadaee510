package utils

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// Logger is the unified logging interface shared by handlers and services.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	With(args ...any) Logger

	// LogError logs an error with an explanatory message and extra fields.
	LogError(err error, msg string, args ...any)
}

// SlogLogger implements Logger on top of slog.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) Logger {
	return &SlogLogger{logger: logger}
}

// NewDefaultLogger creates the production logger with JSON output.
func NewDefaultLogger() Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return NewSlogLogger(logger)
}

// NewDevelopmentLogger creates a text-output logger at debug level.
func NewDevelopmentLogger() Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return NewSlogLogger(logger)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}

func (l *SlogLogger) LogError(err error, msg string, args ...any) {
	allArgs := append([]any{"error", err}, args...)
	l.logger.Error(msg, allArgs...)
}

// GetSlogLogger exposes the underlying slog.Logger for collaborators that
// take slog directly (the event publisher does).
func (l *SlogLogger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// ToSlogLogger unwraps a Logger back to slog, falling back to the default.
func ToSlogLogger(logger Logger) *slog.Logger {
	if sl, ok := logger.(*SlogLogger); ok {
		return sl.GetSlogLogger()
	}
	return slog.Default()
}

// LoggerMiddleware routes gin request logging through our logger.
func LoggerMiddleware(logger Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status_code", param.StatusCode,
			"duration", param.Latency.String(),
			"client_ip", param.ClientIP,
		}
		switch {
		case param.StatusCode >= 500:
			logger.Error("HTTP Request", args...)
		case param.StatusCode >= 400:
			logger.Warn("HTTP Request", args...)
		default:
			logger.Info("HTTP Request", args...)
		}
		return ""
	})
}
