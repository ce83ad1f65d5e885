package timing

import "time"

// TickerLimiter paces a loop with a time.Ticker. Ticks missed while the loop
// was busy are dropped, so it never bursts to catch up. Cheaper than
// AdaptiveLimiter and accurate enough for output pumps that move a whole
// block per tick.
type TickerLimiter struct {
	period time.Duration
	ticker *time.Ticker
}

func NewTickerLimiter(period time.Duration) *TickerLimiter {
	return &TickerLimiter{
		period: period,
		ticker: time.NewTicker(period),
	}
}

func (t *TickerLimiter) Wait() {
	<-t.ticker.C
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.period)
}

// Stop releases the ticker. Wait must not be called afterwards.
func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
