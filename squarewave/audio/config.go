package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidVoiceCount = errors.New("voice count must be positive")
	ErrInvalidAmplitude  = errors.New("note amplitude must be between 1 and 32767")
)

// Config holds the synthesizer settings.
type Config struct {
	SampleRate       int
	MaxVoices        int
	MaxNoteAmplitude int
}

// DefaultConfig returns the settings of the reference hardware.
func DefaultConfig() Config {
	return Config{
		SampleRate:       DefaultSampleRate,
		MaxVoices:        DefaultMaxVoices,
		MaxNoteAmplitude: DefaultMaxNoteAmplitude,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.MaxVoices <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVoiceCount, c.MaxVoices)
	}
	if c.MaxNoteAmplitude <= 0 || c.MaxNoteAmplitude > maxSampleValue {
		return fmt.Errorf("%w: %d", ErrInvalidAmplitude, c.MaxNoteAmplitude)
	}
	return nil
}
