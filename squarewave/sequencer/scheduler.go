package sequencer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/valerio/go-squarewave/squarewave/song"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

// DefaultTicksPerQuarterNote is the resolution the song converter writes.
const DefaultTicksPerQuarterNote = 96

// defaultBPM replaces a non-positive song tempo.
const defaultBPM = 120.0

var (
	ErrInvalidDivisor = errors.New("ticks per quarter note must be positive")
	ErrNotLoaded      = errors.New("no playable song loaded")
)

// NoteSink receives the note events of a song.
type NoteSink interface {
	NoteOn(note, velocity int)
	NoteOff(note int)
	AllNotesOff()
}

// Config holds the scheduler settings.
type Config struct {
	TicksPerQuarterNote int
}

// DefaultConfig returns the converter's timing resolution.
func DefaultConfig() Config {
	return Config{TicksPerQuarterNote: DefaultTicksPerQuarterNote}
}

// Scheduler walks a song's event stream and applies each event to a NoteSink
// once its deadline has passed. It is single-threaded: LoadSong, Start, Stop
// and Poll must be called from the same goroutine.
type Scheduler struct {
	sink   NoteSink
	clock  timing.Clock
	config Config

	state State
	song  *song.Song
	index int // Next event to apply; == EventCount once every event is applied

	nextDeadline  time.Time
	millisPerTick float64
	// remainder carries the sub-millisecond part of each tick conversion into
	// the next one, so rounding error does not pile up over a song.
	remainder float64
}

// New creates an idle scheduler.
func New(sink NoteSink, clock timing.Clock, config Config) *Scheduler {
	return &Scheduler{
		sink:   sink,
		clock:  clock,
		config: config,
		state:  Idle,
	}
}

// LoadSong validates sng and prepares it for playback. On failure the session
// is left Idle with no song, ready for another LoadSong.
func (s *Scheduler) LoadSong(sng *song.Song) error {
	if s.state == Playing {
		s.Stop()
	}
	s.reset()

	if err := sng.Validate(); err != nil {
		slog.Error("Cannot load song", "error", err)
		return fmt.Errorf("failed to load song: %w", err)
	}
	if s.config.TicksPerQuarterNote <= 0 {
		slog.Error("Cannot load song", "ticks_per_quarter_note", s.config.TicksPerQuarterNote)
		return fmt.Errorf("failed to load song: %w", ErrInvalidDivisor)
	}

	s.song = sng
	s.millisPerTick = MillisPerTick(sng.BPM, s.config.TicksPerQuarterNote)
	s.state = Loaded

	slog.Info("Song loaded",
		"name", sng.Name,
		"events", sng.EventCount,
		"bpm", sng.BPM,
		"millis_per_tick", fmt.Sprintf("%.4f", s.millisPerTick),
		"data_bytes", sng.Data.Len())
	return nil
}

// MillisPerTick converts a tempo into milliseconds per tick. A non-positive
// tempo is treated as 120 BPM.
func MillisPerTick(bpm float32, ticksPerQuarterNote int) float64 {
	tempo := float64(bpm)
	if tempo <= 0 {
		tempo = defaultBPM
	}
	return (60000.0 / tempo) / float64(ticksPerQuarterNote)
}

// Start begins playback from the first event. It is valid after a
// successful LoadSong or a Stop; starting while playing does nothing.
func (s *Scheduler) Start() error {
	switch s.state {
	case Playing:
		return nil
	case Loaded, Stopped:
	default:
		slog.Error("Cannot start playback", "state", s.state)
		return fmt.Errorf("cannot start from %s: %w", s.state, ErrNotLoaded)
	}

	delta, err := s.song.Delta(0)
	if err != nil {
		return fmt.Errorf("cannot start: %w", err)
	}

	s.index = 0
	s.remainder = 0
	offset := s.ticksToDuration(delta)
	s.nextDeadline = s.clock.Now().Add(offset)
	s.state = Playing

	slog.Info("Playback started", "song", s.song.Name, "first_event_in", offset)
	return nil
}

// Stop halts playback and silences every voice. The position is kept but
// playback cannot resume from it; Start begins the song again.
func (s *Scheduler) Stop() {
	if s.state != Playing {
		return
	}
	s.state = Stopped
	s.sink.AllNotesOff()
	slog.Info("Playback stopped", "song", s.song.Name, "event", s.index)
}

// Poll applies the next event if its deadline has passed and reports whether
// the song is still playing. Timing resolution is bounded by how often Poll
// is called; at most one event is applied per call.
func (s *Scheduler) Poll() bool {
	if s.state != Playing {
		return false
	}

	now := s.clock.Now()
	if now.Before(s.nextDeadline) {
		return true
	}

	if s.index >= int(s.song.EventCount) {
		s.state = Finished
		s.sink.AllNotesOff()
		slog.Info("Playback finished", "song", s.song.Name, "events", s.song.EventCount)
		return false
	}

	s.apply(s.index)
	s.index++
	s.scheduleNext(now)
	return true
}

func (s *Scheduler) apply(index int) {
	e, err := s.song.Event(index)
	if err != nil {
		// Validate guarantees the span covers every event.
		slog.Error("Cannot read event", "index", index, "error", err)
		return
	}

	switch e.Kind {
	case song.NoteOn:
		// NoteOn treats velocity 0 as a note-off.
		s.sink.NoteOn(int(e.Note), int(e.Velocity))
	case song.NoteOff:
		s.sink.NoteOff(int(e.Note))
	default:
		slog.Debug("Ignoring unknown event", "index", index, "kind", e.Kind)
	}
}

// scheduleNext sets the deadline of the event at s.index relative to the
// time the previous event was processed, not to its deadline.
func (s *Scheduler) scheduleNext(processedAt time.Time) {
	if s.index >= int(s.song.EventCount) {
		// Poll reports completion once the last deadline has been reached.
		return
	}
	delta, err := s.song.Delta(s.index)
	if err != nil {
		slog.Error("Cannot read event delta", "index", s.index, "error", err)
		return
	}
	s.nextDeadline = processedAt.Add(s.ticksToDuration(delta))
}

func (s *Scheduler) ticksToDuration(ticks uint16) time.Duration {
	exact := float64(ticks)*s.millisPerTick + s.remainder
	ms := math.Round(exact)
	s.remainder = exact - ms
	return time.Duration(ms) * time.Millisecond
}

func (s *Scheduler) reset() {
	s.state = Idle
	s.song = nil
	s.index = 0
	s.nextDeadline = time.Time{}
	s.millisPerTick = 0
	s.remainder = 0
}

// State returns the playback state.
func (s *Scheduler) State() State {
	return s.state
}

// Song returns the loaded song, or nil when Idle.
func (s *Scheduler) Song() *song.Song {
	return s.song
}

// Index returns the next event to be applied.
func (s *Scheduler) Index() int {
	return s.index
}

// EventCount returns the loaded song's event count.
func (s *Scheduler) EventCount() int {
	if s.song == nil {
		return 0
	}
	return int(s.song.EventCount)
}

// NextDeadline returns when the next event is due.
func (s *Scheduler) NextDeadline() time.Time {
	return s.nextDeadline
}

// MillisPerTick returns the loaded song's tick length.
func (s *Scheduler) MillisPerTick() float64 {
	return s.millisPerTick
}
