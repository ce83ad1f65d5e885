package output

import (
	"log/slog"
	"sync"
	"time"

	"github.com/valerio/go-squarewave/squarewave/timing"
)

// paced drains a Ring in fixed blocks on a limiter's schedule, standing in
// for a device that consumes samples at its own rate.
type paced struct {
	ring    *Ring
	limiter timing.Limiter
	block   int
	consume func(frames []uint32) error

	wg  sync.WaitGroup
	err error
}

func newPaced(ring *Ring, limiter timing.Limiter, block int, consume func([]uint32) error) *paced {
	if block < 1 {
		block = 1
	}
	p := &paced{
		ring:    ring,
		limiter: limiter,
		block:   block,
		consume: consume,
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// stopper is implemented by limiters holding a timer, like
// timing.TickerLimiter.
type stopper interface {
	Stop()
}

func (p *paced) run() {
	defer p.wg.Done()
	if s, ok := p.limiter.(stopper); ok {
		// The pump owns its limiter; it stops with the output.
		defer s.Stop()
	}

	buf := make([]uint32, p.block)
	for {
		p.limiter.Wait()

		n := p.ring.WaitFrames(buf)
		if n == 0 {
			return
		}
		if err := p.consume(buf[:n]); err != nil {
			slog.Error("Output consumer failed", "error", err)
			p.err = err
			// Unblock the render loop; further writes report ErrClosed.
			p.ring.Close()
			return
		}
	}
}

// wait blocks until the ring is closed and drained, and returns the first
// consumer error.
func (p *paced) wait() error {
	p.wg.Wait()
	return p.err
}

// BlockFrames returns how many frames a device running at sampleRate consumes
// per interval, never less than one.
func BlockFrames(sampleRate int, interval time.Duration) int {
	return max(1, int(int64(sampleRate)*int64(interval)/int64(time.Second)))
}
