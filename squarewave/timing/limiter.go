package timing

import "time"

// Limiter paces a loop.
type Limiter interface {
	// Wait blocks until the next iteration is due.
	// Returns immediately if timing is behind schedule.
	Wait()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit. A control loop using it
// busy-polls, which gives the best event timing at the cost of a full core.
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) Wait()  {}
func (n *noOpLimiter) Reset() {}

// DefaultPollInterval is the control loop period used when busy-polling is not
// requested. One millisecond matches the resolution of the event deadlines.
const DefaultPollInterval = time.Millisecond

// DefaultPumpInterval is how often paced outputs drain their buffer.
const DefaultPumpInterval = 10 * time.Millisecond

// NewLimiter returns a no-op limiter for a non-positive period and an
// adaptive limiter otherwise.
func NewLimiter(period time.Duration) Limiter {
	if period <= 0 {
		return NewNoOpLimiter()
	}
	return NewAdaptiveLimiter(period)
}
