package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-squarewave/squarewave/audio"
	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
	"github.com/valerio/go-squarewave/squarewave/voice"
)

func newTestBackend(t *testing.T, width, height int) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	b := NewWithScreen(screen)
	require.NoError(t, b.Init(backend.Config{Title: "squarewave", Songs: []string{"scale", "arpeggio"}}))
	screen.SetSize(width, height)
	t.Cleanup(func() { _ = b.Cleanup() })
	return b, screen
}

func screenText(screen tcell.SimulationScreen) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for i, cell := range cells {
		if len(cell.Runes) > 0 {
			sb.WriteRune(cell.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
		if (i+1)%width == 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func testStatus() backend.Status {
	return backend.Status{
		Song:       "scale",
		State:      sequencer.Playing,
		Event:      10,
		EventCount: 30,
		BPM:        120,
		Elapsed:    3200 * time.Millisecond,
		Voices: []voice.State{
			{Slot: 0, Active: true, Note: 69, Frequency: 440, Amplitude: 16000, Output: 16000},
			{Slot: 1},
		},
		Stats: audio.Stats{Capacity: 2, ActiveVoices: 1, DroppedNotes: 3},
	}
}

func TestBackend_RendersStatus(t *testing.T) {
	b, screen := newTestBackend(t, 100, 30)

	actions, err := b.Update(testStatus())
	require.NoError(t, err)
	assert.Empty(t, actions)

	text := screenText(screen)
	assert.Contains(t, text, "squarewave ─ scale (1/2)")
	assert.Contains(t, text, "playing")
	assert.Contains(t, text, "event 10/30")
	assert.Contains(t, text, "dropped 3")
	assert.Contains(t, text, "00:03.2")
	assert.Contains(t, text, "A4")
	assert.Contains(t, text, "440.00 Hz")
	assert.Contains(t, text, "Voices 1/2")
	assert.Contains(t, text, "Terminal backend initialized")
}

func TestBackend_TooSmall(t *testing.T) {
	b, screen := newTestBackend(t, 30, 10)

	_, err := b.Update(testStatus())
	require.NoError(t, err)
	assert.Contains(t, screenText(screen), "Terminal too small")
}

func TestBackend_KeysToActions(t *testing.T) {
	b, screen := newTestBackend(t, 100, 30)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var actions []backend.Action
	require.Eventually(t, func() bool {
		got, _ := b.Update(testStatus())
		actions = append(actions, got...)
		return len(actions) >= 4
	}, time.Second, time.Millisecond)

	assert.Equal(t, []backend.Action{
		backend.TogglePlayback,
		backend.NextSong,
		backend.PreviousSong,
		backend.Quit,
	}, actions)
}

func TestBackend_LogLevelKeys(t *testing.T) {
	b, _ := newTestBackend(t, 100, 30)
	require.Equal(t, "INFO", b.logLevel.Level().String())

	b.changeLogLevel(1)
	assert.Equal(t, "DEBUG", b.logLevel.Level().String())
	b.changeLogLevel(1)
	assert.Equal(t, "DEBUG", b.logLevel.Level().String())

	b.changeLogLevel(-1)
	b.changeLogLevel(-1)
	b.changeLogLevel(-1)
	b.changeLogLevel(-1)
	assert.Equal(t, "ERROR", b.logLevel.Level().String())
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00.0", formatElapsed(0))
	assert.Equal(t, "01:05.3", formatElapsed(65*time.Second+270*time.Millisecond))
}
