package audio

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/valerio/go-squarewave/squarewave/output"
	"github.com/valerio/go-squarewave/squarewave/voice"
)

// Synth is a polyphonic square-wave synthesizer. NoteOn and NoteOff may be
// called from any goroutine while Run renders on its own goroutine; the voice
// pool is the only state they share.
type Synth struct {
	config Config
	pool   *voice.Pool

	samplesRendered atomic.Uint64
}

// New creates a synthesizer with all voices idle.
func New(config Config) (*Synth, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synth config: %w", err)
	}

	s := &Synth{
		config: config,
		pool:   voice.NewPool(config.MaxVoices, config.SampleRate),
	}

	slog.Debug("Synthesizer initialized",
		"sample_rate", config.SampleRate,
		"voices", config.MaxVoices,
		"max_note_amplitude", config.MaxNoteAmplitude)
	return s, nil
}

// NoteOn starts note at velocity. A zero velocity is a note-off.
func (s *Synth) NoteOn(note, velocity int) {
	if velocity == 0 {
		s.NoteOff(note)
		return
	}

	frequency := NoteToFrequency(note)
	amplitude := VelocityToAmplitude(velocity, s.config.MaxNoteAmplitude)
	s.pool.Allocate(note, frequency, amplitude)
}

// NoteOff silences note if it is playing.
func (s *Synth) NoteOff(note int) {
	s.pool.Free(note)
}

// AllNotesOff silences every voice.
func (s *Synth) AllNotesOff() {
	s.pool.AllOff()
}

// NextSample advances every active voice by one sample and returns the mix.
// It holds the pool lock only while walking the voices.
func (s *Synth) NextSample() int16 {
	sum, active := s.pool.Render()
	s.samplesRendered.Add(1)
	return mix(sum, active)
}

// Run renders samples into out until ctx is cancelled or out stops accepting
// samples. The blocking WriteSample is the loop's only pacing, so out decides
// the real-time cadence.
func (s *Synth) Run(ctx context.Context, out output.Output) error {
	slog.Info("Audio render loop started", "sample_rate", s.config.SampleRate)
	done := ctx.Done()

	for {
		select {
		case <-done:
			slog.Info("Audio render loop stopped", "samples", s.samplesRendered.Load())
			return nil
		default:
		}

		if err := out.WriteSample(s.NextSample()); err != nil {
			slog.Info("Audio render loop stopped", "samples", s.samplesRendered.Load(), "reason", err)
			return err
		}
	}
}

// GetSamples renders count samples synchronously. Calling it while Run is
// rendering is safe, but both then advance the same voices, so each sees a
// waveform with samples missing.
func (s *Synth) GetSamples(count int) []int16 {
	samples := make([]int16, count)
	for i := range samples {
		samples[i] = s.NextSample()
	}
	return samples
}

// Voices returns a copy of the voice table.
func (s *Synth) Voices() []voice.State {
	return s.pool.Snapshot()
}

// Stats returns render and allocation counters.
func (s *Synth) Stats() Stats {
	return Stats{
		SamplesRendered: s.samplesRendered.Load(),
		ActiveVoices:    s.pool.Active(),
		DroppedNotes:    s.pool.Dropped(),
		Capacity:        s.pool.Capacity(),
	}
}

// Config returns the settings the synthesizer was built with.
func (s *Synth) Config() Config {
	return s.config
}

// Stats summarizes synthesizer activity.
type Stats struct {
	SamplesRendered uint64
	ActiveVoices    int
	DroppedNotes    uint64
	Capacity        int
}
