package squarewave

import (
	"errors"
	"fmt"
	"time"

	"github.com/valerio/go-squarewave/squarewave/audio"
	"github.com/valerio/go-squarewave/squarewave/input"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

// DefaultUpdateInterval is how often the backend is refreshed.
const DefaultUpdateInterval = 50 * time.Millisecond

var ErrEmptyCatalog = errors.New("song catalog is empty")

// Config collects the settings of every component.
type Config struct {
	Audio     audio.Config
	Sequencer sequencer.Config

	// PollInterval paces the control loop; 0 busy-polls.
	PollInterval time.Duration
	// UpdateInterval throttles backend updates; 0 updates on every poll.
	UpdateInterval time.Duration
	// DebounceDelay filters repeated backend actions.
	DebounceDelay time.Duration
	// Loop restarts the current song when it finishes.
	Loop bool
}

// DefaultConfig returns the settings used by the command line tool.
func DefaultConfig() Config {
	return Config{
		Audio:          audio.DefaultConfig(),
		Sequencer:      sequencer.DefaultConfig(),
		PollInterval:   timing.DefaultPollInterval,
		UpdateInterval: DefaultUpdateInterval,
		DebounceDelay:  input.DefaultDebounceDelay,
	}
}

// Validate checks the settings that can be checked before a song is loaded.
func (c Config) Validate() error {
	if err := c.Audio.Validate(); err != nil {
		return err
	}
	if c.Sequencer.TicksPerQuarterNote <= 0 {
		return fmt.Errorf("ticks per quarter note %d: %w", c.Sequencer.TicksPerQuarterNote, sequencer.ErrInvalidDivisor)
	}
	if c.PollInterval < 0 || c.UpdateInterval < 0 || c.DebounceDelay < 0 {
		return errors.New("intervals must not be negative")
	}
	return nil
}
