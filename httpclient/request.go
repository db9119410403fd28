// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-jamfpro-oapi/headers"
	"github.com/deploymenttheory/go-jamfpro-oapi/ratehandler"
	"github.com/deploymenttheory/go-jamfpro-oapi/response"
	"github.com/deploymenttheory/go-jamfpro-oapi/status"
)

// DoRequest sends body to endpoint, relative to the integration's domain, and decodes a
// successful reply into out. GET, PUT and DELETE are retried on transient failures and rate
// limits until MaxRetryAttempts or TotalRetryDuration runs out; POST and PATCH are sent once.
// Non-2xx replies are returned as *response.APIError. The returned response's body has already
// been consumed and closed.
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, body, out any) (*http.Response, error) {
	switch {
	case IsIdempotentHTTPMethod(method):
		return c.executeRequestWithRetries(ctx, method, endpoint, body, out)
	case IsNonIdempotentHTTPMethod(method):
		return c.executeRequest(ctx, method, endpoint, body, out)
	default:
		c.Sugar.Errorw("HTTP method not supported", "method", method)
		return nil, fmt.Errorf("HTTP method not supported: %s", method)
	}
}

func (c *Client) executeRequestWithRetries(ctx context.Context, method, endpoint string, body, out any) (*http.Response, error) {
	log := c.Sugar
	deadline := time.Now().Add(c.config.TotalRetryDuration)

	log.Debugw("Executing request with retries", "method", method, "endpoint", endpoint)

	var retryCount int
	for {
		resp, err := c.doRequest(ctx, method, endpoint, body)
		if err != nil {
			return nil, err
		}

		if status.IsSuccess(resp.StatusCode) {
			return resp, c.handleSuccess(resp, out)
		}

		if status.IsNonRetryableStatusCode(resp.StatusCode) || !status.IsRetryableStatusCode(resp.StatusCode) {
			log.Warnw("Non-retryable response received", "method", method, "endpoint", endpoint, "status_code", resp.StatusCode)
			return resp, c.handleError(resp)
		}

		retryCount++
		rateLimited := resp.StatusCode == http.StatusTooManyRequests
		wait := ratehandler.ParseRateLimitHeaders(resp, log)
		if wait == 0 {
			wait = ratehandler.CalculateBackoff(retryCount - 1)
		}

		if retryCount > c.config.MaxRetryAttempts || time.Now().Add(wait).After(deadline) {
			log.Warnw("Max retry attempts reached", "method", method, "endpoint", endpoint, "retry_count", retryCount-1)
			return resp, c.handleError(resp)
		}

		drain(resp)
		c.Concurrency.RecordRetry(rateLimited)
		log.Warnw("Retrying request",
			"method", method,
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"retry_count", retryCount,
			"wait_duration", wait,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (c *Client) executeRequest(ctx context.Context, method, endpoint string, body, out any) (*http.Response, error) {
	c.Sugar.Debugw("Executing request without retries", "method", method, "endpoint", endpoint)

	resp, err := c.doRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	if status.IsSuccess(resp.StatusCode) {
		return resp, c.handleSuccess(resp, out)
	}
	return resp, c.handleError(resp)
}

// doRequest performs a single round trip while holding a concurrency permit.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	log := c.Sugar

	ctx, requestID, err := c.Concurrency.AcquireConcurrencyToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring concurrency token: %w", err)
	}
	defer c.Concurrency.ReleaseConcurrencyToken(requestID)

	requestData, err := c.Integration.MarshalRequest(body, method, endpoint)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if requestData != nil {
		reader = bytes.NewReader(requestData)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Integration.Domain()+endpoint, reader)
	if err != nil {
		return nil, err
	}
	if c.redirects != nil && (method == http.MethodGet || method == http.MethodHead) {
		req.URL = c.redirects.RewriteURL(req.URL)
	}

	if err := c.Integration.SetRequestHeaders(ctx, req); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorw("Failed to send request", "method", method, "endpoint", endpoint, "request_id", requestID.String(), "error", err)
		return nil, err
	}

	headers.CheckDeprecationHeader(resp, log)
	log.Debugw("Request sent",
		"method", method,
		"endpoint", endpoint,
		"request_id", requestID.String(),
		"status_code", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

func (c *Client) handleSuccess(resp *http.Response, out any) error {
	defer resp.Body.Close()
	return response.HandleAPISuccessResponse(resp, out, c.Sugar)
}

func (c *Client) handleError(resp *http.Response) error {
	defer resp.Body.Close()
	return response.HandleAPIErrorResponse(resp, c.Sugar)
}

// drain discards the rest of a body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
