// status.go
// Package status classifies Jamf Pro API response codes for the retry and redirect logic.
package status

import (
	"net/http"
)

// IsSuccess reports a 2xx status.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsRedirectStatusCode reports whether the status carries a Location to follow:
// 301, 302, 303, 307 or 308.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect checks if the provided HTTP status code is one of the permanent redirect codes.
func IsPermanentRedirect(statusCode int) bool {
	return statusCode == http.StatusMovedPermanently || statusCode == http.StatusPermanentRedirect
}

// IsNonRetryableStatusCode reports client errors that repeating the request cannot fix.
// 408 and 429 are 4xx codes that are retried instead.
func IsNonRetryableStatusCode(statusCode int) bool {
	if statusCode < 400 || statusCode >= 500 {
		return false
	}
	return !IsRetryableStatusCode(statusCode)
}

// IsTransientError reports a 5xx gateway or availability failure.
func IsTransientError(resp *http.Response) bool {
	if resp == nil {
		return false
	}
	switch resp.StatusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// IsRetryableStatusCode reports whether a request may be repeated after this status.
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
