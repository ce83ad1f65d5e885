package backend

import (
	"time"

	"github.com/valerio/go-squarewave/squarewave/audio"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
	"github.com/valerio/go-squarewave/squarewave/voice"
)

// Backend is a frontend for a running synthesizer.
// Backends are responsible for:
// - Presenting playback status (log lines, a terminal monitor, ...)
// - Translating platform input into Actions
type Backend interface {
	// Init configures the backend. This is a required step before calling
	// Update.
	Init(config Config) error

	// Update presents the latest status and returns the actions requested
	// since the previous call. It is called from the control loop, so it
	// must not block.
	Update(status Status) ([]Action, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title     string
	Songs     []string // Catalog song names, in order
	ShowDebug bool     // Backends may ignore unsupported features
}

// Status is a snapshot of the synthesizer taken by the control loop.
type Status struct {
	Song       string
	SongIndex  int
	State      sequencer.State
	Event      int // Next event to be applied
	EventCount int
	BPM        float32
	Elapsed    time.Duration // Time since the current pass through the song started
	Uptime     time.Duration // Time since the session started, across loops and song changes
	Voices     []voice.State
	Stats      audio.Stats
}

// Progress returns the fraction of events applied, between 0 and 1.
func (s Status) Progress() float64 {
	if s.EventCount == 0 {
		return 0
	}
	return float64(s.Event) / float64(s.EventCount)
}

// ActiveVoices counts sounding voices in the snapshot.
func (s Status) ActiveVoices() int {
	n := 0
	for _, v := range s.Voices {
		if v.Active {
			n++
		}
	}
	return n
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName formats a MIDI note number in scientific pitch notation, with
// middle C (60) as C4.
func NoteName(note int) string {
	if note < 0 || note > 127 {
		return "--"
	}
	octave := note/12 - 1
	name := noteNames[note%12]
	if octave < 0 {
		return name + "-1"
	}
	return name + string(rune('0'+octave))
}
