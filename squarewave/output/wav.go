package output

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

const (
	wavBitDepth  = 16
	wavFormatPCM = 1
)

// WAV records rendered audio to a 16-bit stereo PCM WAV stream. Samples are
// drained in blocks on the limiter's schedule, so with a real-time limiter
// the render loop runs at the same pace it would against a sound card.
type WAV struct {
	ring   *Ring
	pump   *paced
	enc    *wav.Encoder
	buf    *audio.IntBuffer
	frames atomic.Uint64
}

// NewWAV starts recording to w. The header is finalized by Close, which is
// why w must be seekable. Like NewDiscard, it takes ownership of limiter.
func NewWAV(w io.WriteSeeker, sampleRate int, limiter timing.Limiter, blockFrames int) *WAV {
	if blockFrames < 1 {
		blockFrames = 1
	}

	out := &WAV{
		ring: NewRing(blockFrames * 2),
		enc:  wav.NewEncoder(w, sampleRate, wavBitDepth, Channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: Channels, SampleRate: sampleRate},
			SourceBitDepth: wavBitDepth,
			Data:           make([]int, 0, blockFrames*Channels),
		},
	}
	out.pump = newPaced(out.ring, limiter, blockFrames, out.encode)
	return out
}

func (o *WAV) encode(frames []uint32) error {
	o.buf.Data = o.buf.Data[:0]
	for _, frame := range frames {
		o.buf.Data = append(o.buf.Data, int(Left(frame)), int(Right(frame)))
	}
	if err := o.enc.Write(o.buf); err != nil {
		return fmt.Errorf("failed to encode WAV block: %w", err)
	}
	o.frames.Add(uint64(len(frames)))
	return nil
}

func (o *WAV) WriteSample(sample int16) error {
	return o.ring.WriteSample(sample)
}

// Frames returns the number of frames written to the stream.
func (o *WAV) Frames() uint64 {
	return o.frames.Load()
}

// Close flushes queued frames and finalizes the WAV header. It does not close
// the underlying writer.
func (o *WAV) Close() error {
	o.ring.Close()
	err := o.pump.wait()
	if cerr := o.enc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to finalize WAV: %w", cerr)
	}
	return err
}

var _ Output = (*WAV)(nil)
