// ============================================================================
// hyperf-saas-helper - Precision Calculator
// ============================================================================
//
// Package:     logging
// Description: Structured zap logging for the calculator tools
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mdwerror "github.com/faed235/hyperf-saas-helper/foundation/core/error"
	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to its Level. Unknown names yield LevelInfo
// and false.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger wraps zap.Logger with the run correlation id of one invocation.
type Logger struct {
	*zap.Logger
	runID string
}

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format, "json" or "console" (default: console)
	Format string

	// Output defaults to stderr so that results on stdout stay clean.
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// NewLogger builds a logger tagged with the service name and a fresh run_id.
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		return nil, errors.InvalidInput(errors.ModuleConfig, "new_logger", cfg.Level, "debug|info|warn|error")
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig(false))
	case "console", "text", "":
		encoder = zapcore.NewConsoleEncoder(encoderConfig(true))
	default:
		return nil, errors.InvalidInput(errors.ModuleConfig, "new_logger", cfg.Format, "json|console")
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	syncers := []zapcore.WriteSyncer{zapcore.AddSync(output)}
	for _, w := range cfg.AdditionalOutputs {
		syncers = append(syncers, zapcore.AddSync(w))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), zap.NewAtomicLevelAt(level.zap()))
	runID := uuid.NewString()
	logger := zap.New(core).Named(cfg.ServiceName).With(zap.String("run_id", runID))

	return &Logger{Logger: logger, runID: runID}, nil
}

// NewSimpleLogger creates a logger with the default configuration, or a
// no-op logger if that fails.
func NewSimpleLogger(serviceName string) *Logger {
	logger, err := NewLogger(DefaultLoggerConfig(serviceName))
	if err != nil {
		return Nop()
	}
	return logger
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// RunID returns the correlation id attached to every entry.
func (l *Logger) RunID() string {
	return l.runID
}

// maxLoggedFrames caps the error stack attached to alerting entries.
const maxLoggedFrames = 8

// Err logs err with its code, category, severity, module and operation.
// Errors whose severity should alert are logged at error level together with
// the stack captured at creation, everything else at warn level.
func (l *Logger) Err(msg string, err error) {
	code := mdwerror.GetCode(err)
	severity := mdwerror.GetSeverity(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.Stringer("code", code),
		zap.Stringer("severity", severity),
	}
	if code.IsValid() {
		fields = append(fields, zap.String("category", code.Category()))
	}
	if module := errors.ExtractModule(err); module != "" {
		fields = append(fields, zap.String("module", module))
	}
	if op := errors.ExtractOperation(err); op != "" {
		fields = append(fields, zap.String("operation", op))
	}

	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		fields = append(fields, zap.Time("error_time", mdwErr.Timestamp()))
	}
	if !severity.ShouldAlert() {
		l.Warn(msg, fields...)
		return
	}
	if mdwErr != nil {
		fields = append(fields, zap.Strings("error_stack", formatStack(mdwErr.StackTrace())))
	}
	l.Error(msg, fields...)
}

func formatStack(frames []mdwerror.StackFrame) []string {
	if len(frames) > maxLoggedFrames {
		frames = frames[:maxLoggedFrames]
	}
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
	}
	return lines
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		return zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			StacktraceKey:  "S",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}

	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
}
