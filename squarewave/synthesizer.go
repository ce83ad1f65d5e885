package squarewave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/valerio/go-squarewave/squarewave/audio"
	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/input"
	"github.com/valerio/go-squarewave/squarewave/output"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
	"github.com/valerio/go-squarewave/squarewave/song"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

// Synthesizer plays songs from a catalog: the scheduler feeds note events to
// the synth while the synth renders into an output on its own goroutine.
type Synthesizer struct {
	config    Config
	synth     *audio.Synth
	monitor   audio.Provider
	scheduler *sequencer.Scheduler
	catalog   *song.Catalog
	clock     timing.Clock
	limiter   timing.Limiter
	input     *input.Handler

	current      int
	startedAt    time.Time // Start of the current pass through the song
	sessionStart time.Time // Start of Run; loop restarts keep it
}

// New builds a synthesizer over catalog. clock drives event timing; nil
// selects the system clock.
func New(config Config, catalog *song.Catalog, clock timing.Clock) (*Synthesizer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if clock == nil {
		clock = timing.SystemClock{}
	}

	synth, err := audio.New(config.Audio)
	if err != nil {
		return nil, err
	}

	return &Synthesizer{
		config:    config,
		synth:     synth,
		monitor:   synth,
		scheduler: sequencer.New(synth, clock, config.Sequencer),
		catalog:   catalog,
		clock:     clock,
		limiter:   timing.NewLimiter(config.PollInterval),
		input:     input.NewHandler(clock, config.DebounceDelay),
	}, nil
}

// Select loads the catalog song at index, wrapping around, and starts it.
func (s *Synthesizer) Select(index int) error {
	n := s.catalog.Len()
	s.current = ((index % n) + n) % n

	if err := s.scheduler.LoadSong(s.catalog.At(s.current)); err != nil {
		return err
	}
	return s.start()
}

// SelectByName selects a song by its case-insensitive name.
func (s *Synthesizer) SelectByName(name string) error {
	_, index, ok := s.catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown song %q", name)
	}
	return s.Select(index)
}

func (s *Synthesizer) start() error {
	if err := s.scheduler.Start(); err != nil {
		return err
	}
	s.startedAt = s.clock.Now()
	s.limiter.Reset()
	return nil
}

// Run renders into out and drives playback until be asks to quit, ctx is
// cancelled, or out fails. be must already be initialized and a song should
// have been selected. out is not closed.
func (s *Synthesizer) Run(ctx context.Context, out output.Output, be backend.Backend) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.sessionStart = s.clock.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.synth.Run(ctx, out)
	})
	g.Go(func() error {
		// The render loop only returns once the control loop is done with it.
		defer cancel()
		return s.control(ctx, be)
	})

	err := g.Wait()
	stats := s.synth.Stats()
	slog.Info("Synthesizer stopped",
		"samples", stats.SamplesRendered,
		"dropped_notes", stats.DroppedNotes)
	return err
}

func (s *Synthesizer) control(ctx context.Context, be backend.Backend) error {
	defer s.synth.AllNotesOff()

	var nextUpdate time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !s.scheduler.Poll() && s.scheduler.State() == sequencer.Finished && s.config.Loop {
			slog.Debug("Looping song", "song", s.scheduler.Song().Name)
			if err := s.Select(s.current); err != nil {
				return err
			}
		}

		if now := s.clock.Now(); !now.Before(nextUpdate) {
			nextUpdate = now.Add(s.config.UpdateInterval)

			actions, err := be.Update(s.Status())
			if err != nil {
				return fmt.Errorf("backend update failed: %w", err)
			}
			for _, act := range s.input.Filter(actions) {
				quit, err := s.handle(act)
				if err != nil {
					slog.Warn("Action failed", "action", act, "error", err)
				}
				if quit {
					return nil
				}
			}
		}

		s.limiter.Wait()
	}
}

// handle applies a backend action and reports whether to quit.
func (s *Synthesizer) handle(act backend.Action) (bool, error) {
	slog.Debug("Handling action", "action", act)

	switch act {
	case backend.Quit:
		s.scheduler.Stop()
		return true, nil
	case backend.TogglePlayback:
		if s.scheduler.State() == sequencer.Playing {
			s.scheduler.Stop()
			return false, nil
		}
		if s.scheduler.State() == sequencer.Finished {
			// A finished session has to be reloaded before it can start.
			return false, s.Select(s.current)
		}
		return false, s.start()
	case backend.NextSong:
		return false, s.Select(s.current + 1)
	case backend.PreviousSong:
		return false, s.Select(s.current - 1)
	default:
		slog.Warn("Ignoring unknown action", "action", act)
		return false, nil
	}
}

// Status returns a snapshot for backends.
func (s *Synthesizer) Status() backend.Status {
	status := backend.Status{
		SongIndex:  s.current,
		State:      s.scheduler.State(),
		Event:      s.scheduler.Index(),
		EventCount: s.scheduler.EventCount(),
		Voices:     s.monitor.Voices(),
		Stats:      s.monitor.Stats(),
	}
	if sng := s.scheduler.Song(); sng != nil {
		status.Song = sng.Name
		status.BPM = sng.BPM
	}
	now := s.clock.Now()
	if status.State == sequencer.Playing {
		status.Elapsed = now.Sub(s.startedAt)
	}
	if !s.sessionStart.IsZero() {
		status.Uptime = now.Sub(s.sessionStart)
	}
	return status
}

// BackendConfig describes the catalog to a backend's Init.
func (s *Synthesizer) BackendConfig(showDebug bool) backend.Config {
	return backend.Config{
		Title:     "squarewave",
		Songs:     s.catalog.Names(),
		ShowDebug: showDebug,
	}
}

// Synth exposes the underlying synthesizer.
func (s *Synthesizer) Synth() *audio.Synth {
	return s.synth
}

// Scheduler exposes the event scheduler.
func (s *Synthesizer) Scheduler() *sequencer.Scheduler {
	return s.scheduler
}
