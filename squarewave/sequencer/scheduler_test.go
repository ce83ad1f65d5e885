package sequencer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-squarewave/squarewave/song"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

type recordingSink struct {
	calls []string
}

func (r *recordingSink) NoteOn(note, velocity int) {
	r.calls = append(r.calls, fmt.Sprintf("on %d %d", note, velocity))
}

func (r *recordingSink) NoteOff(note int) {
	r.calls = append(r.calls, fmt.Sprintf("off %d", note))
}

func (r *recordingSink) AllNotesOff() {
	r.calls = append(r.calls, "all off")
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestScheduler() (*Scheduler, *recordingSink, *timing.ManualClock) {
	sink := &recordingSink{}
	clock := timing.NewManualClock(epoch)
	return New(sink, clock, DefaultConfig()), sink, clock
}

func twoEventSong() *song.Song {
	return song.MustNew("pair", 120, song.Encode([]song.Event{
		{Delta: 96, Kind: song.NoteOn, Note: 60, Velocity: 100},
		{Delta: 48, Kind: song.NoteOff, Note: 60},
	}))
}

func TestMillisPerTick(t *testing.T) {
	assert.InDelta(t, 5.2083, MillisPerTick(120, 96), 0.0001)
	assert.InDelta(t, 5.2083, MillisPerTick(0, 96), 0.0001, "zero tempo falls back to 120 BPM")
	assert.InDelta(t, 5.2083, MillisPerTick(-30, 96), 0.0001, "negative tempo falls back to 120 BPM")
	assert.InDelta(t, 10.4167, MillisPerTick(60, 96), 0.0001)
}

func TestScheduler_DeterministicScenario(t *testing.T) {
	s, sink, clock := newTestScheduler()

	require.NoError(t, s.LoadSong(twoEventSong()))
	assert.Equal(t, Loaded, s.State())
	assert.InDelta(t, 5.2083, s.MillisPerTick(), 0.0001)

	require.NoError(t, s.Start())
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, epoch.Add(500*time.Millisecond), s.NextDeadline())

	// Nothing fires before the deadline.
	clock.Advance(499 * time.Millisecond)
	assert.True(t, s.Poll())
	assert.Empty(t, sink.calls)

	// First event fires; the next deadline is relative to processing time.
	clock.Advance(3 * time.Millisecond)
	firstAt := clock.Now()
	assert.True(t, s.Poll())
	assert.Equal(t, []string{"on 60 100"}, sink.calls)
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, firstAt.Add(250*time.Millisecond), s.NextDeadline())

	clock.Advance(250 * time.Millisecond)
	assert.True(t, s.Poll(), "the last event still reports playing")
	assert.Equal(t, []string{"on 60 100", "off 60"}, sink.calls)
	assert.Equal(t, 2, s.Index())

	// Index now equals the event count: the next poll finishes.
	assert.False(t, s.Poll())
	assert.Equal(t, Finished, s.State())
	assert.Equal(t, []string{"on 60 100", "off 60", "all off"}, sink.calls)

	assert.False(t, s.Poll(), "finished is terminal")
	assert.ErrorIs(t, s.Start(), ErrNotLoaded)
}

func TestScheduler_OneEventPerPoll(t *testing.T) {
	s, sink, _ := newTestScheduler()

	require.NoError(t, s.LoadSong(song.MustNew("chord", 120, song.Encode([]song.Event{
		{Delta: 0, Kind: song.NoteOn, Note: 60, Velocity: 90},
		{Delta: 0, Kind: song.NoteOn, Note: 64, Velocity: 90},
		{Delta: 0, Kind: song.NoteOn, Note: 67, Velocity: 90},
	}))))
	require.NoError(t, s.Start())

	assert.True(t, s.Poll())
	assert.Len(t, sink.calls, 1)
	assert.True(t, s.Poll())
	assert.Len(t, sink.calls, 2)
	assert.True(t, s.Poll())
	assert.Len(t, sink.calls, 3)
	assert.False(t, s.Poll())
}

func TestScheduler_VelocityZeroNoteOn(t *testing.T) {
	s, sink, _ := newTestScheduler()

	require.NoError(t, s.LoadSong(song.MustNew("zero", 120, song.Encode([]song.Event{
		{Delta: 0, Kind: song.NoteOn, Note: 60, Velocity: 0},
		{Delta: 0, Kind: song.Kind(7), Note: 61, Velocity: 50},
	}))))
	require.NoError(t, s.Start())

	s.Poll()
	s.Poll()
	// The sink receives the raw note-on; velocity 0 handling belongs to it.
	// Unknown kinds are skipped.
	assert.Equal(t, []string{"on 60 0"}, sink.calls)
}

func TestScheduler_LoadSongFailures(t *testing.T) {
	tests := []struct {
		name string
		song *song.Song
		want error
	}{
		{"nil reference", nil, song.ErrNoData},
		{"nil data", &song.Song{Name: "nil", EventCount: 3, BPM: 120}, song.ErrNoData},
		{"zero events", &song.Song{Name: "empty", Data: song.NewSpan(nil), BPM: 120}, song.ErrNoEvents},
		{"truncated", &song.Song{Name: "short", Data: song.NewSpan(make([]byte, 5)), EventCount: 1}, song.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestScheduler()

			err := s.LoadSong(tt.song)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, Idle, s.State())
			assert.Nil(t, s.Song())
			assert.ErrorIs(t, s.Start(), ErrNotLoaded)
			assert.False(t, s.Poll())

			// A valid song is accepted afterwards.
			require.NoError(t, s.LoadSong(twoEventSong()))
			assert.Equal(t, Loaded, s.State())
		})
	}
}

func TestScheduler_FailedLoadClearsPreviousSong(t *testing.T) {
	s, _, _ := newTestScheduler()

	require.NoError(t, s.LoadSong(twoEventSong()))
	require.Error(t, s.LoadSong(nil))
	assert.Equal(t, Idle, s.State())
	assert.Zero(t, s.EventCount())
}

func TestScheduler_InvalidDivisor(t *testing.T) {
	sink := &recordingSink{}
	s := New(sink, timing.NewManualClock(epoch), Config{TicksPerQuarterNote: 0})

	assert.ErrorIs(t, s.LoadSong(twoEventSong()), ErrInvalidDivisor)
	assert.Equal(t, Idle, s.State())
}

func TestScheduler_StopAndRestart(t *testing.T) {
	s, sink, clock := newTestScheduler()

	require.NoError(t, s.LoadSong(twoEventSong()))
	s.Stop()
	assert.Equal(t, Loaded, s.State(), "stop is only valid while playing")

	require.NoError(t, s.Start())
	clock.Advance(500 * time.Millisecond)
	require.True(t, s.Poll())

	s.Stop()
	assert.Equal(t, Stopped, s.State())
	assert.Equal(t, 1, s.Index(), "stop keeps the position")
	assert.Equal(t, []string{"on 60 100", "all off"}, sink.calls)
	assert.False(t, s.Poll())

	// Start from Stopped plays the song from the top.
	require.NoError(t, s.Start())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, clock.Now().Add(500*time.Millisecond), s.NextDeadline())

	// Starting twice is harmless.
	require.NoError(t, s.Start())
	assert.Equal(t, Playing, s.State())
}

func TestScheduler_LoadWhilePlayingStops(t *testing.T) {
	s, sink, _ := newTestScheduler()

	require.NoError(t, s.LoadSong(twoEventSong()))
	require.NoError(t, s.Start())
	require.NoError(t, s.LoadSong(twoEventSong()))

	assert.Equal(t, Loaded, s.State())
	assert.Equal(t, []string{"all off"}, sink.calls)
}

func TestScheduler_StartErrors(t *testing.T) {
	s, _, _ := newTestScheduler()
	assert.ErrorIs(t, s.Start(), ErrNotLoaded)
	assert.Equal(t, Idle, s.State())
}

func TestScheduler_NoCumulativeRoundingDrift(t *testing.T) {
	s, _, clock := newTestScheduler()

	// At 97 BPM a 1-tick delta is 6.4433 ms. Rounding each one independently
	// would schedule 6 ms per event and lose 0.44 ms every time.
	events := make([]song.Event, 100)
	for i := range events {
		events[i] = song.Event{Delta: 1, Kind: song.NoteOff, Note: 60}
	}
	require.NoError(t, s.LoadSong(song.MustNew("ticks", 97, song.Encode(events))))
	require.NoError(t, s.Start())

	start := clock.Now()
	for s.Index() < len(events) {
		clock.Set(s.NextDeadline())
		require.True(t, s.Poll())
	}

	// The last event is due 100 ticks after the start.
	elapsed := clock.Now().Sub(start)
	want := 100 * MillisPerTick(97, DefaultTicksPerQuarterNote)
	assert.InDelta(t, want, float64(elapsed.Milliseconds()), 1.0)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "unknown", State(42).String())
}
