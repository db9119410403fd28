// logger/logger.go
/* Package logger builds the zap loggers shared by the client, the collection resources and the
generator CLI. Callers receive a *zap.SugaredLogger and log with key/value pairs. */
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the level of logging. Higher values denote more severe log messages.
type LogLevel int

const (
	LogLevelDebug  LogLevel = -1 // Zap's DEBUG level
	LogLevelInfo   LogLevel = 0  // Zap's INFO level
	LogLevelWarn   LogLevel = 1  // Zap's WARN level
	LogLevelError  LogLevel = 2  // Zap's ERROR level
	LogLevelDPanic LogLevel = 3  // Zap's DPANIC level
	LogLevelPanic  LogLevel = 4  // Zap's PANIC level
	LogLevelFatal  LogLevel = 5  // Zap's FATAL level
	LogLevelNone   LogLevel = 6
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ParseLogLevelFromString converts a level name from configuration into a LogLevel. Both the
// constant names ("LogLevelDebug") and the short zap names ("debug") are accepted; anything
// else disables logging.
func ParseLogLevelFromString(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimPrefix(levelStr, "LogLevel")) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	case "dpanic":
		return LogLevelDPanic
	case "panic":
		return LogLevelPanic
	case "fatal":
		return LogLevelFatal
	default:
		return LogLevelNone
	}
}

// Options configures BuildLogger.
type Options struct {
	Level             LogLevel
	Encoding          string // json or console
	ConsoleSeparator  string
	ExportPath        string // file or directory; empty logs to stdout only
	HideSensitiveData bool
}

// BuildLogger creates a sugared zap logger writing RFC 3339 timestamps to stdout and, when an
// export path is set, to a log file. With HideSensitiveData set, credential fields are redacted
// before they reach any output.
func BuildLogger(opts Options) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.NameKey = "logger"
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	encoding := opts.Encoding
	if encoding == "" {
		encoding = EncodingJSON
	}
	if encoding == EncodingConsole {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.ConsoleSeparator = opts.ConsoleSeparator
	}

	outputs := []string{"stdout"}
	if opts.ExportPath != "" {
		path, err := EnsureLogFilePath(opts.ExportPath)
		if err != nil {
			return nil, fmt.Errorf("preparing log export path: %w", err)
		}
		outputs = append(outputs, path)
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(opts.Level)),
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	base, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return Wrap(base, opts.HideSensitiveData).Sugar(), nil
}

// Wrap installs the redacting core on an existing logger when hideSensitive is set.
func Wrap(base *zap.Logger, hideSensitive bool) *zap.Logger {
	if !hideSensitive {
		return base
	}
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &redactingCore{Core: core}
	}))
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level.
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelDPanic:
		return zap.DPanicLevel
	case LogLevelPanic:
		return zap.PanicLevel
	case LogLevelFatal:
		return zap.FatalLevel
	case LogLevelNone:
		return zapcore.InvalidLevel
	default:
		return zap.InfoLevel
	}
}
