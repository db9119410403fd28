// concurrency/semaphore.go
/* Package concurrency caps the number of requests in flight against one Jamf Pro tenant. Jamf
recommends no more than five concurrent API calls; every request holds a permit for its duration. */
package concurrency

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultMaxConcurrency is the permit count used when none is configured.
	DefaultMaxConcurrency = 5

	// DefaultAcquireTimeout bounds how long a request waits for a permit.
	DefaultAcquireTimeout = 10 * time.Second
)

// RequestIDKey is the context key under which the permit's request ID is stored.
type RequestIDKey struct{}

// ConcurrencyHandler hands out request permits.
type ConcurrencyHandler struct {
	sem            *semaphore.Weighted
	limit          int64
	acquireTimeout time.Duration
	logger         *zap.SugaredLogger

	mu       sync.Mutex
	inFlight int64
	Metrics  ConcurrencyMetrics
}

// ConcurrencyMetrics are running totals for the life of the handler.
type ConcurrencyMetrics struct {
	TotalRequests        int64
	TotalRetries         int64
	TotalRateLimitErrors int64
	PermitWaitTime       time.Duration
}

// NewConcurrencyHandler returns a handler allowing limit requests at once. A non-positive limit
// uses DefaultMaxConcurrency, a non-positive timeout DefaultAcquireTimeout.
func NewConcurrencyHandler(limit int, acquireTimeout time.Duration, logger *zap.SugaredLogger) *ConcurrencyHandler {
	if limit <= 0 {
		limit = DefaultMaxConcurrency
	}
	if acquireTimeout <= 0 {
		acquireTimeout = DefaultAcquireTimeout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ConcurrencyHandler{
		sem:            semaphore.NewWeighted(int64(limit)),
		limit:          int64(limit),
		acquireTimeout: acquireTimeout,
		logger:         logger,
	}
}

// AcquireConcurrencyToken blocks until a permit is free, ctx is done, or the acquire timeout
// passes. The returned context carries the request ID; pass that ID to
// ReleaseConcurrencyToken when the request completes.
func (ch *ConcurrencyHandler) AcquireConcurrencyToken(ctx context.Context) (context.Context, uuid.UUID, error) {
	start := time.Now()
	requestID := uuid.New()

	waitCtx, cancel := context.WithTimeout(ctx, ch.acquireTimeout)
	defer cancel()

	if err := ch.sem.Acquire(waitCtx, 1); err != nil {
		ch.logger.Errorw("Failed to acquire concurrency token", "request_id", requestID.String(), "error", err)
		return ctx, requestID, err
	}

	wait := time.Since(start)
	ch.mu.Lock()
	ch.inFlight++
	ch.Metrics.TotalRequests++
	ch.Metrics.PermitWaitTime += wait
	inFlight := ch.inFlight
	ch.mu.Unlock()

	ch.logger.Debugw("Acquired concurrency token",
		"request_id", requestID.String(),
		"acquisition_time", wait,
		"utilized_tokens", inFlight,
		"available_tokens", ch.limit-inFlight,
	)
	return context.WithValue(ctx, RequestIDKey{}, requestID), requestID, nil
}

// ReleaseConcurrencyToken returns a permit taken by AcquireConcurrencyToken.
func (ch *ConcurrencyHandler) ReleaseConcurrencyToken(requestID uuid.UUID) {
	ch.sem.Release(1)

	ch.mu.Lock()
	ch.inFlight--
	inFlight := ch.inFlight
	ch.mu.Unlock()

	ch.logger.Debugw("Released concurrency token",
		"request_id", requestID.String(),
		"utilized_tokens", inFlight,
		"available_tokens", ch.limit-inFlight,
	)
}

// RecordRetry counts a retried request; rateLimited marks a 429.
func (ch *ConcurrencyHandler) RecordRetry(rateLimited bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.Metrics.TotalRetries++
	if rateLimited {
		ch.Metrics.TotalRateLimitErrors++
	}
}

// Snapshot returns a copy of the metrics.
func (ch *ConcurrencyHandler) Snapshot() ConcurrencyMetrics {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.Metrics
}

// RequestIDFromContext returns the request ID stored by AcquireConcurrencyToken.
func RequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(RequestIDKey{}).(uuid.UUID)
	return id, ok
}
