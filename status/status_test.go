package status

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		code         int
		success      bool
		redirect     bool
		retryable    bool
		nonRetryable bool
	}{
		{http.StatusOK, true, false, false, false},
		{http.StatusNoContent, true, false, false, false},
		{http.StatusFound, false, true, false, false},
		{http.StatusPermanentRedirect, false, true, false, false},
		{http.StatusBadRequest, false, false, false, true},
		{http.StatusConflict, false, false, false, true},
		{http.StatusRequestTimeout, false, false, true, false},
		{http.StatusTooManyRequests, false, false, true, false},
		{http.StatusServiceUnavailable, false, false, true, false},
		{http.StatusNotImplemented, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.success, IsSuccess(tt.code))
			assert.Equal(t, tt.redirect, IsRedirectStatusCode(tt.code))
			assert.Equal(t, tt.retryable, IsRetryableStatusCode(tt.code))
			assert.Equal(t, tt.nonRetryable, IsNonRetryableStatusCode(tt.code))
		})
	}
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(&http.Response{StatusCode: http.StatusBadGateway}))
	assert.False(t, IsTransientError(&http.Response{StatusCode: http.StatusTooManyRequests}))
	assert.False(t, IsTransientError(nil))
	assert.True(t, IsPermanentRedirect(http.StatusMovedPermanently))
	assert.False(t, IsPermanentRedirect(http.StatusFound))
}
