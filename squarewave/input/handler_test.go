package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

func TestHandler_Debounces(t *testing.T) {
	clock := timing.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	h := NewHandler(clock, DefaultDebounceDelay)

	assert.True(t, h.Accept(backend.TogglePlayback), "first press should pass")
	assert.False(t, h.Accept(backend.TogglePlayback), "immediate repeat should be debounced")
	assert.True(t, h.Accept(backend.NextSong), "other actions are tracked separately")

	clock.Advance(DefaultDebounceDelay)
	assert.True(t, h.Accept(backend.TogglePlayback), "press after the delay should pass")
}

func TestHandler_QuitNeverDebounced(t *testing.T) {
	clock := timing.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	h := NewHandler(clock, time.Hour)

	for range 3 {
		assert.True(t, h.Accept(backend.Quit))
	}
}

func TestHandler_Filter(t *testing.T) {
	clock := timing.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	h := NewHandler(clock, DefaultDebounceDelay)

	got := h.Filter([]backend.Action{
		backend.NextSong,
		backend.NextSong,
		backend.TogglePlayback,
		backend.Quit,
		backend.NextSong,
	})
	assert.Equal(t, []backend.Action{backend.NextSong, backend.TogglePlayback, backend.Quit}, got)
	assert.Empty(t, h.Filter(nil))
}
