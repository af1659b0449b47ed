package webhook_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atnchile/portal/pkg/webhook"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCircuitBreaker(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	cb := webhook.NewCircuitBreaker(3, 2, time.Minute, webhook.WithCircuitClock(clk.Now))

	assert.Equal(t, webhook.CircuitClosed, cb.State())
	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, webhook.CircuitClosed, cb.State(), "success resets the failure count")

	cb.RecordFailure()
	assert.Equal(t, webhook.CircuitOpen, cb.State())
	assert.False(t, cb.Allow())

	clk.Advance(2 * time.Minute)
	assert.Equal(t, webhook.CircuitHalfOpen, cb.State())
	assert.True(t, cb.Allow())

	cb.RecordFailure()
	assert.Equal(t, webhook.CircuitOpen, cb.State(), "failed probe reopens")

	clk.Advance(2 * time.Minute)
	assert.True(t, cb.Allow())
	cb.RecordSuccess()
	assert.Equal(t, webhook.CircuitHalfOpen, cb.State())
	cb.RecordSuccess()
	assert.Equal(t, webhook.CircuitClosed, cb.State())

	cb.RecordFailure()
	cb.Reset()
	assert.Equal(t, "closed", cb.State().String())
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	exp := webhook.ExponentialBackoff{InitialInterval: 100 * time.Millisecond, MaxInterval: time.Second, Multiplier: 2}
	assert.Equal(t, time.Duration(0), exp.NextInterval(0))
	assert.Equal(t, 100*time.Millisecond, exp.NextInterval(1))
	assert.Equal(t, 400*time.Millisecond, exp.NextInterval(3))
	assert.Equal(t, time.Second, exp.NextInterval(10))

	jittered := webhook.ExponentialBackoff{InitialInterval: time.Second, JitterFactor: 0.1}
	for range 20 {
		d := jittered.NextInterval(1)
		assert.GreaterOrEqual(t, d, 900*time.Millisecond)
		assert.LessOrEqual(t, d, 1100*time.Millisecond)
	}

	fixed := webhook.FixedBackoff{Interval: time.Second}
	assert.Equal(t, time.Second, fixed.NextInterval(5))
	assert.Equal(t, time.Duration(0), fixed.NextInterval(0))

	assert.NotNil(t, webhook.DefaultBackoffStrategy())
}
