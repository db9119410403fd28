package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

const redacted = "[REDACTED]"

// sensitiveKeys are matched case-insensitively against field keys.
var sensitiveKeys = []string{"authorization", "password", "secret", "token", "cookie"}

// redactingCore replaces the values of credential fields before they are encoded.
type redactingCore struct {
	zapcore.Core
}

// With redacts context fields as they are attached.
func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{c.Core.With(redactFields(fields))}
}

// Check must register this core rather than the wrapped one so Write sees every entry.
func (c *redactingCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, c)
	}
	return checkedEntry
}

// Write serializes the entry with sensitive fields redacted.
func (c *redactingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, redactFields(fields))
}

func redactFields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		if IsSensitiveKey(f.Key) {
			f = zapcore.Field{Key: f.Key, Type: zapcore.StringType, String: redacted}
		}
		out[i] = f
	}
	return out
}

// IsSensitiveKey reports whether a field or header name carries credentials.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
