package output

import (
	"sync/atomic"

	"github.com/valerio/go-squarewave/squarewave/timing"
)

// Discard consumes samples at real-time rate and throws them away. It lets
// the synthesizer run without an audio device.
type Discard struct {
	ring   *Ring
	pump   *paced
	frames atomic.Uint64
}

// NewDiscard starts a discard output that consumes blockFrames per limiter
// tick. Pass timing.NewNoOpLimiter to run as fast as possible. The output
// owns limiter: a limiter with a Stop method is stopped on Close.
func NewDiscard(limiter timing.Limiter, blockFrames int) *Discard {
	d := &Discard{ring: NewRing(blockFrames * 2)}
	d.pump = newPaced(d.ring, limiter, blockFrames, func(frames []uint32) error {
		d.frames.Add(uint64(len(frames)))
		return nil
	})
	return d
}

func (d *Discard) WriteSample(sample int16) error {
	return d.ring.WriteSample(sample)
}

// Frames returns the number of frames consumed so far.
func (d *Discard) Frames() uint64 {
	return d.frames.Load()
}

func (d *Discard) Close() error {
	d.ring.Close()
	return d.pump.wait()
}

var _ Output = (*Discard)(nil)
