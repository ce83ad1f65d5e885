package audio

import "github.com/valerio/go-squarewave/squarewave/voice"

// Provider exposes rendered audio and voice state to frontends.
type Provider interface {
	// GetSamples renders samples synchronously.
	GetSamples(count int) []int16

	// Monitoring

	Voices() []voice.State
	Stats() Stats
}

var _ Provider = (*Synth)(nil)
