// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-jamfpro-oapi/logger"
)

// SetAuthorization sets a bearer Authorization header, adding the Bearer prefix only once.
func SetAuthorization(req *http.Request, token string) {
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	req.Header.Set("Authorization", token)
}

// SetStandardHeaders sets Content-Type, Accept and User-Agent. Empty values are skipped.
func SetStandardHeaders(req *http.Request, contentType, accept, userAgent string) {
	for name, value := range map[string]string{
		"Content-Type": contentType,
		"Accept":       accept,
		"User-Agent":   userAgent,
	} {
		if value != "" {
			req.Header.Set(name, value)
		}
	}
}

// RedactSensitiveHeaderData redacts credential headers when hideSensitiveData is set.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && logger.IsSensitiveKey(key) {
		return "REDACTED"
	}
	return value
}

// HeadersToString renders headers one per line, sorted by name, with repeated values
// joined by commas.
func HeadersToString(headers http.Header) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(headers[name], ", ")))
	}
	return strings.Join(lines, "\n")
}

// LogHeaders logs the request headers at debug level, redacting credentials when asked.
func LogHeaders(log *zap.SugaredLogger, req *http.Request, hideSensitiveData bool) {
	if !log.Desugar().Core().Enabled(zap.DebugLevel) {
		return
	}
	redacted := http.Header{}
	for name, values := range req.Header {
		for _, v := range values {
			redacted.Add(name, RedactSensitiveHeaderData(hideSensitiveData, name, v))
		}
	}
	log.Debugw("HTTP request headers", "method", req.Method, "url", req.URL.String(), "headers", HeadersToString(redacted))
}

// CheckDeprecationHeader logs a warning when the server marks an endpoint as deprecated.
func CheckDeprecationHeader(resp *http.Response, log *zap.SugaredLogger) {
	if date := resp.Header.Get("Deprecation"); date != "" {
		endpoint := ""
		if resp.Request != nil {
			endpoint = resp.Request.URL.String()
		}
		log.Warnw("API endpoint is deprecated", "date", date, "endpoint", endpoint)
	}
}
