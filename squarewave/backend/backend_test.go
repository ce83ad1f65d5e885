package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-squarewave/squarewave/voice"
)

func TestNoteName(t *testing.T) {
	tests := map[int]string{
		60:  "C4",
		69:  "A4",
		61:  "C#4",
		0:   "C-1",
		11:  "B-1",
		12:  "C0",
		127: "G9",
		-1:  "--",
		128: "--",
	}
	for note, want := range tests {
		assert.Equal(t, want, NoteName(note), "note %d", note)
	}
}

func TestStatus(t *testing.T) {
	s := Status{
		Event:      3,
		EventCount: 12,
		Voices: []voice.State{
			{Slot: 0, Active: true},
			{Slot: 1},
			{Slot: 2, Active: true},
		},
	}
	assert.InDelta(t, 0.25, s.Progress(), 1e-9)
	assert.Equal(t, 2, s.ActiveVoices())
	assert.Zero(t, Status{}.Progress())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "toggle-playback", TogglePlayback.String())
	assert.Equal(t, "next-song", NextSong.String())
	assert.Equal(t, "previous-song", PreviousSong.String())
	assert.Equal(t, "unknown", Action(99).String())
}
