package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"LogLevelDebug", LogLevelDebug},
		{"LogLevelInfo", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"LogLevelDPanic", LogLevelDPanic},
		{"panic", LogLevelPanic},
		{"LogLevelFatal", LogLevelFatal},
		{"verbose", LogLevelNone},
		{"", LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevelFromString(tt.input))
		})
	}
}

func TestConvertToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, convertToZapLevel(LogLevelDebug))
	assert.Equal(t, zapcore.ErrorLevel, convertToZapLevel(LogLevelError))
	assert.Equal(t, zapcore.InfoLevel, convertToZapLevel(LogLevel(42)))
	assert.False(t, zap.NewAtomicLevelAt(convertToZapLevel(LogLevelNone)).Enabled(zapcore.FatalLevel))
}

func TestRedactingCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core), true).Sugar().With("Authorization", "Bearer abc")

	log.Infow("Requesting token", "client_secret", "s3cr3t", "url", "https://example.jamfcloud.com")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["Authorization"])
	assert.Equal(t, redacted, fields["client_secret"])
	assert.Equal(t, "https://example.jamfcloud.com", fields["url"])
}

func TestWrapWithoutRedaction(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Wrap(zap.New(core), false).Sugar().Infow("Requesting token", "password", "hunter2")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hunter2", logs.All()[0].ContextMap()["password"])
}

func TestIsSensitiveKey(t *testing.T) {
	assert.True(t, IsSensitiveKey("Set-Cookie"))
	assert.True(t, IsSensitiveKey("access_token"))
	assert.False(t, IsSensitiveKey("Content-Type"))
}

func TestBuildLoggerExportsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	log, err := BuildLogger(Options{Level: LogLevelInfo, Encoding: EncodingJSON, ExportPath: path, HideSensitiveData: true})
	require.NoError(t, err)
	log.Infow("Client ready", "password", "hunter2")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Client ready"`)
	assert.Contains(t, string(data), `"password":"[REDACTED]"`)
	assert.Contains(t, string(data), `"timestamp":`)
}

func TestEnsureLogFilePath(t *testing.T) {
	dir := t.TempDir()

	got, err := EnsureLogFilePath(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(got))
	assert.True(t, strings.HasSuffix(got, ".log"))

	nested := filepath.Join(dir, "a", "b")
	got, err = EnsureLogFilePath(nested)
	require.NoError(t, err)
	assert.Equal(t, nested, filepath.Dir(got))

	file := filepath.Join(dir, "existing.log")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	got, err = EnsureLogFilePath(file)
	require.NoError(t, err)
	assert.Equal(t, file, got)
}
