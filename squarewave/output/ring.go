package output

import (
	"encoding/binary"
	"io"
	"sync"
)

// Ring is a fixed-capacity queue of stereo frames between the render loop and
// an output device. WriteSample blocks while the ring is full, which is what
// paces the render loop.
type Ring struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	frames []uint32
	head   int
	count  int
	closed bool
}

// NewRing creates a ring holding up to capacity frames.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	r := &Ring{frames: make([]uint32, capacity)}
	r.notFull = sync.NewCond(&r.mu)
	r.notEmpty = sync.NewCond(&r.mu)
	return r
}

// WriteSample queues one sample, blocking until there is room.
func (r *Ring) WriteSample(sample int16) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.count == len(r.frames) && !r.closed {
		r.notFull.Wait()
	}
	if r.closed {
		return ErrClosed
	}

	r.frames[(r.head+r.count)%len(r.frames)] = PackStereo(sample)
	r.count++
	r.notEmpty.Signal()
	return nil
}

// ReadFrames moves up to len(dst) queued frames into dst without blocking.
func (r *Ring) ReadFrames(dst []uint32) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked(dst)
}

// WaitFrames is ReadFrames that blocks until at least one frame is queued.
// It returns 0 only once the ring is closed and drained.
func (r *Ring) WaitFrames(dst []uint32) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.count == 0 && !r.closed {
		r.notEmpty.Wait()
	}
	return r.readLocked(dst)
}

func (r *Ring) readLocked(dst []uint32) int {
	n := min(len(dst), r.count)
	for i := 0; i < n; i++ {
		dst[i] = r.frames[r.head]
		r.head = (r.head + 1) % len(r.frames)
	}
	r.count -= n
	if n > 0 {
		r.notFull.Broadcast()
	}
	return n
}

// Read implements io.Reader for audio devices that pull signed 16-bit
// little-endian stereo. It never blocks: missing frames are filled with
// silence so a slow render loop causes a dropout rather than a stall.
func (r *Ring) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed && r.count == 0 {
		return 0, io.EOF
	}

	var buf [256]uint32
	n := len(p) / BytesPerFrame
	for done := 0; done < n; {
		chunk := buf[:min(len(buf), n-done)]
		got := r.readLocked(chunk)
		clear(chunk[got:])
		for i, frame := range chunk {
			off := (done + i) * BytesPerFrame
			binary.LittleEndian.PutUint16(p[off:], uint16(Left(frame)))
			binary.LittleEndian.PutUint16(p[off+2:], uint16(Right(frame)))
		}
		done += len(chunk)
	}
	return n * BytesPerFrame, nil
}

// Len returns the number of queued frames.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the ring capacity in frames.
func (r *Ring) Cap() int {
	return len(r.frames)
}

// Close wakes every blocked writer and reader. Queued frames can still be read.
func (r *Ring) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.notFull.Broadcast()
	r.notEmpty.Broadcast()
	return nil
}

var _ Output = (*Ring)(nil)
var _ io.Reader = (*Ring)(nil)
