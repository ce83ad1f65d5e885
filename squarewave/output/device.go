//go:build !headless

package output

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Device plays samples through the system sound card. The render loop writes
// into a ring that oto drains from its own goroutine; a full ring blocks the
// writer, so the sound card sets the pace.
type Device struct {
	ring   *Ring
	ctx    *oto.Context
	player *oto.Player
	mutex  sync.Mutex // Only for setup/control operations
}

// NewDevice opens the default audio device at sampleRate with room for
// bufferFrames queued frames.
func NewDevice(sampleRate, bufferFrames int) (*Device, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: Channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	d := &Device{
		ring: NewRing(bufferFrames),
		ctx:  ctx,
	}
	d.player = ctx.NewPlayer(d.ring)
	d.player.Play()

	slog.Info("Audio device opened", "sample_rate", sampleRate, "buffer_frames", bufferFrames)
	return d, nil
}

func (d *Device) WriteSample(sample int16) error {
	return d.ring.WriteSample(sample)
}

func (d *Device) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.ring.Close()
	if d.player == nil {
		return nil
	}
	err := d.player.Close()
	d.player = nil
	return err
}

var _ Output = (*Device)(nil)
