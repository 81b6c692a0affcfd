package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Define an unexported custom type for the context key to prevent collisions.
type loggerContextKey struct{}

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	VersionKey   = "version"
)

// Logger writes JSON lines to a rotated file. The terminal belongs to the
// TUI, so nothing is ever written to stdout or stderr.
type Logger struct {
	zap  *zap.Logger
	file *lumberjack.Logger
	logr logr.Logger
}

// New creates a logger writing to path. verbosity is the highest logr V
// level that is written. An empty path discards everything.
func New(path string, verbosity int, version string) *Logger {
	if path == "" {
		return &Logger{logr: logr.Discard()}
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	if verbosity < 0 {
		verbosity = 0
	}
	// zapr maps logr V(n) to zap level -n
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	).With([]zapcore.Field{zap.String(VersionKey, version)})

	z := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return &Logger{
		zap:  z,
		file: file,
		logr: zapr.NewLogger(z),
	}
}

// Logr returns the logr.Logger handed to the rest of the program
func (l *Logger) Logr() logr.Logger {
	return l.logr
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() {
	if l.zap == nil {
		return
	}
	if err := l.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}

// WithLogger returns a new context carrying log
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger stored in ctx, or a logger that discards
func FromContext(ctx context.Context) logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(logr.Logger); ok {
		return log
	}
	return logr.Discard()
}
