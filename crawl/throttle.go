package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/harvest"
)

var _ harvest.Throttle = (*JitterThrottle)(nil)

// JitterThrottle pauses for a random duration drawn uniformly from [Min, Max].
type JitterThrottle struct {
	Min time.Duration
	Max time.Duration
}

// NewJitterThrottle creates a JitterThrottle. Bounds are swapped if given
// in the wrong order.
func NewJitterThrottle(minDelay, maxDelay time.Duration) *JitterThrottle {
	if maxDelay < minDelay {
		minDelay, maxDelay = maxDelay, minDelay
	}
	return &JitterThrottle{Min: minDelay, Max: maxDelay}
}

// Delay returns the next pause length.
func (t *JitterThrottle) Delay() time.Duration {
	if t.Max <= t.Min {
		return max(t.Min, 0)
	}
	return t.Min + rand.N(t.Max-t.Min+1)
}

// Wait sleeps for Delay or until ctx is done, whichever comes first.
func (t *JitterThrottle) Wait(ctx context.Context) error {
	d := t.Delay()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
