package concurrency

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAcquireAndRelease(t *testing.T) {
	ch := NewConcurrencyHandler(2, time.Second, zap.NewNop().Sugar())

	ctx, id, err := ch.AcquireConcurrencyToken(context.Background())
	require.NoError(t, err)

	got, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	ch.ReleaseConcurrencyToken(id)
	assert.Equal(t, int64(1), ch.Snapshot().TotalRequests)
}

func TestAcquireTimesOutWhenExhausted(t *testing.T) {
	ch := NewConcurrencyHandler(1, 20*time.Millisecond, nil)

	_, id, err := ch.AcquireConcurrencyToken(context.Background())
	require.NoError(t, err)
	defer ch.ReleaseConcurrencyToken(id)

	_, _, err = ch.AcquireConcurrencyToken(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAcquireHonoursCancellation(t *testing.T) {
	ch := NewConcurrencyHandler(1, time.Minute, nil)

	_, id, err := ch.AcquireConcurrencyToken(context.Background())
	require.NoError(t, err)
	defer ch.ReleaseConcurrencyToken(id)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = ch.AcquireConcurrencyToken(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimitIsNeverExceeded(t *testing.T) {
	const limit = 3
	ch := NewConcurrencyHandler(limit, time.Second, nil)

	var current, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, id, err := ch.AcquireConcurrencyToken(context.Background())
			if err != nil {
				return
			}
			n := atomic.AddInt64(&current, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&current, -1)
			ch.ReleaseConcurrencyToken(id)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak, int64(limit))
	assert.Equal(t, int64(20), ch.Snapshot().TotalRequests)
}

func TestRecordRetry(t *testing.T) {
	ch := NewConcurrencyHandler(0, 0, nil)
	ch.RecordRetry(true)
	ch.RecordRetry(false)

	m := ch.Snapshot()
	assert.Equal(t, int64(2), m.TotalRetries)
	assert.Equal(t, int64(1), m.TotalRateLimitErrors)
}
