// headers/headers_test.go
package headers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetAuthorization(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

	SetAuthorization(req, "test-token")
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))

	SetAuthorization(req, "Bearer other")
	assert.Equal(t, "Bearer other", req.Header.Get("Authorization"), "prefix must not be doubled")
}

func TestSetStandardHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

	SetStandardHeaders(req, "application/json", "application/json", "")

	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Empty(t, req.Header.Values("User-Agent"))
}

func TestRedactSensitiveHeaderData(t *testing.T) {
	cases := []struct {
		name              string
		hideSensitiveData bool
		key               string
		value             string
		expected          string
	}{
		{"Sensitive Key With Redaction", true, "Authorization", "Bearer abc", "REDACTED"},
		{"Sensitive Key Without Redaction", false, "Authorization", "Bearer abc", "Bearer abc"},
		{"Cookie With Redaction", true, "Cookie", "jpro-ingress=1", "REDACTED"},
		{"Non-Sensitive Key With Redaction", true, "User-Agent", "MyCustomAgent", "MyCustomAgent"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RedactSensitiveHeaderData(tc.hideSensitiveData, tc.key, tc.value))
		})
	}
}

func TestHeadersToString(t *testing.T) {
	h := http.Header{}
	h.Add("b", "2")
	h.Add("a", "1")
	h.Add("a", "3")

	assert.Equal(t, "A: 1, 3\nB: 2", HeadersToString(h))
}

func TestLogHeaders(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/buildings", nil)
	req.Header.Set("Authorization", "Bearer abc")

	LogHeaders(zap.New(core).Sugar(), req, true)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Authorization: REDACTED", logs.All()[0].ContextMap()["headers"])
}

func TestLogHeadersSkippedAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

	LogHeaders(zap.New(core).Sugar(), req, true)
	assert.Equal(t, 0, logs.Len())
}

func TestCheckDeprecationHeader(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/departments", nil)
	resp := &http.Response{Header: http.Header{"Deprecation": []string{"2024-06-01"}}, Request: req}

	CheckDeprecationHeader(resp, zap.New(core).Sugar())

	require.Equal(t, 1, logs.FilterMessage("API endpoint is deprecated").Len())
}
