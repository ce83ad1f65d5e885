package timing

import (
	"log/slog"
	"time"
)

// spinThreshold is the remaining wait below which the limiter busy-waits
// instead of sleeping; sleeps overshoot by up to a millisecond.
const spinThreshold = 2 * time.Millisecond

// AdaptiveLimiter sleeps for most of each period and spins for the rest,
// correcting accumulated drift.
type AdaptiveLimiter struct {
	period     time.Duration
	next       time.Time
	iterations int64
}

func NewAdaptiveLimiter(period time.Duration) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		period: period,
		next:   time.Now(),
	}
}

func (a *AdaptiveLimiter) Wait() {
	now := time.Now()
	remaining := a.next.Sub(now)

	switch {
	case remaining >= spinThreshold:
		time.Sleep(remaining - time.Millisecond)
		spinUntil(a.next)
	case remaining > 0:
		spinUntil(a.next)
	case remaining < -5*a.period:
		// Too far behind to catch up; skip the missed periods.
		a.next = now
	}

	a.next = a.next.Add(a.period)
	a.iterations++

	if a.iterations%1000 == 0 {
		drift := time.Since(a.next)
		if drift.Abs() > 10*a.period {
			a.next = a.next.Add(drift / 10)
			slog.Debug("Poll timing drift correction",
				"drift_ms", drift.Milliseconds(),
				"iterations", a.iterations)
		}
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.next = time.Now()
	a.iterations = 0
}

// Period returns the target interval between returns from Wait.
func (a *AdaptiveLimiter) Period() time.Duration {
	return a.period
}

func spinUntil(deadline time.Time) {
	for time.Now().Before(deadline) {
	}
}
