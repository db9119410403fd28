// ratehandler/ratehandler.go
/* Package ratehandler computes how long the client waits before retrying a request: exponential
backoff with jitter, or the delay the server asks for through its rate limit headers. */
package ratehandler

import (
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	baseDelay    = 100 * time.Millisecond
	maxDelay     = 5 * time.Second
	jitterFactor = 0.5
	skewBuffer   = 5 * time.Second
)

// CalculateBackoff returns the delay before retry number retry (counting from zero): baseDelay
// doubled per attempt, spread by up to jitterFactor either way and capped at maxDelay.
func CalculateBackoff(retry int) time.Duration {
	if retry < 0 {
		retry = 0
	}
	delay := float64(baseDelay) * math.Pow(2, float64(retry))
	jitter := (rand.Float64() - 0.5) * jitterFactor * 2 * delay
	backoff := time.Duration(delay + jitter)
	if backoff > maxDelay {
		return maxDelay
	}
	return backoff
}

// ParseRateLimitHeaders returns the wait the server asked for, or zero when it gave none.
// Retry-After may hold seconds or an HTTP date. X-RateLimit-Reset is honoured once
// X-RateLimit-Remaining reaches zero, with a buffer for clock skew.
func ParseRateLimitHeaders(resp *http.Response, log *zap.SugaredLogger) time.Duration {
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.ParseInt(retryAfter, 10, 64); err == nil {
			log.Debugw("Retry-After header", "seconds", seconds)
			return time.Duration(seconds) * time.Second
		}
		if at, err := http.ParseTime(retryAfter); err == nil {
			wait := time.Until(at)
			if wait < 0 {
				wait = 0
			}
			log.Debugw("Retry-After header", "date", retryAfter, "wait", wait)
			return wait
		}
		log.Warnw("Unparseable Retry-After header", "value", retryAfter)
	}

	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
			wait := time.Until(time.Unix(reset, 0)) + skewBuffer
			if wait < 0 {
				wait = 0
			}
			log.Debugw("Rate limit exhausted", "reset", reset, "wait", wait)
			return wait
		}
	}
	return 0
}
