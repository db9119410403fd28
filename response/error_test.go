package response

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func errorResponse(status int, contentType, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "https://example.jamfcloud.com/api/v1/buildings", nil)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

func TestHandleAPIErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
		wantFields  map[string]string
	}{
		{
			name:        "jamf error envelope",
			status:      http.StatusBadRequest,
			contentType: "application/json;charset=UTF-8",
			body:        `{"httpStatus":400,"errors":[{"code":"INVALID_FIELD","field":"name","description":"must not be blank","id":"0"}]}`,
			wantMessage: "name: must not be blank",
			wantFields:  map[string]string{"name": "must not be blank"},
		},
		{
			name:        "duplicate name",
			status:      http.StatusConflict,
			contentType: "application/json",
			body:        `{"httpStatus":409,"errors":[{"code":"DUPLICATE_FIELD","description":"name already exists"}]}`,
			wantMessage: "name already exists",
			wantFields:  map[string]string{},
		},
		{
			name:        "invalid json falls back to text",
			status:      http.StatusInternalServerError,
			contentType: "application/json",
			body:        `oops`,
			wantMessage: "oops",
			wantFields:  map[string]string{},
		},
		{
			name:        "xml body",
			status:      http.StatusNotFound,
			contentType: "text/xml",
			body:        `<error><code>404</code><message>Not Found</message></error>`,
			wantMessage: "404; Not Found",
			wantFields:  map[string]string{},
		},
		{
			name:        "html body",
			status:      http.StatusUnauthorized,
			contentType: "text/html; charset=utf-8",
			body:        `<html><body><p>Unauthorized. See <a href="https://docs.example.com">docs</a></p></body></html>`,
			wantMessage: "Unauthorized. See [Link: https://docs.example.com] docs",
			wantFields:  map[string]string{},
		},
		{
			name:        "plain text",
			status:      http.StatusServiceUnavailable,
			contentType: "text/plain",
			body:        "maintenance\n",
			wantMessage: "maintenance",
			wantFields:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)

			apiErr := HandleAPIErrorResponse(errorResponse(tt.status, tt.contentType, tt.body), zap.New(core).Sugar())

			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, http.MethodPost, apiErr.Method)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantFields, apiErr.FieldErrors())
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, int64(tt.status), logs.All()[0].ContextMap()["status"])
		})
	}
}

func TestAPIErrorHelpers(t *testing.T) {
	apiErr := HandleAPIErrorResponse(errorResponse(http.StatusConflict, "text/plain", "duplicate"), zap.NewNop().Sugar())
	wrapped := fmt.Errorf("creating building: %w", apiErr)

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(fmt.Errorf("plain")))
	assert.Equal(t, "POST https://example.jamfcloud.com/api/v1/buildings: 409 duplicate", apiErr.Error())

	empty := &APIError{StatusCode: http.StatusNotFound, Method: http.MethodGet, URL: "/x"}
	assert.Equal(t, "GET /x: 404 Not Found", empty.Error())
}
