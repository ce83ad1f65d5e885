package headless

import (
	"log/slog"
	"time"

	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
)

// Backend implements the Backend interface for batch playback: it logs
// progress and quits once the song is over.
type Backend struct {
	config      backend.Config
	maxDuration time.Duration // Session time limit; 0 means play until the song ends
	interval    time.Duration // Progress log interval

	updates    int
	lastLogged time.Duration
	lastState  sequencer.State
}

// DefaultProgressInterval is how often playback progress is logged.
const DefaultProgressInterval = 2 * time.Second

func New(maxDuration, progressInterval time.Duration) *Backend {
	if progressInterval <= 0 {
		progressInterval = DefaultProgressInterval
	}
	return &Backend{
		maxDuration: maxDuration,
		interval:    progressInterval,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config
	h.updates = 0
	h.lastLogged = 0
	h.lastState = sequencer.Idle

	slog.Info("Running headless mode",
		"songs", len(config.Songs),
		"max_duration", h.maxDuration,
		"progress_interval", h.interval)
	return nil
}

// Update logs progress periodically and requests a quit when playback is
// over or the time limit is reached.
func (h *Backend) Update(status backend.Status) ([]backend.Action, error) {
	h.updates++

	if status.State != h.lastState {
		slog.Debug("Playback state changed", "song", status.Song, "from", h.lastState, "to", status.State)
		h.lastState = status.State
	}

	if status.State == sequencer.Playing && status.Uptime-h.lastLogged >= h.interval {
		h.lastLogged = status.Uptime
		slog.Info("Playback progress",
			"song", status.Song,
			"event", status.Event,
			"events", status.EventCount,
			"elapsed", status.Elapsed.Round(time.Millisecond),
			"voices", status.ActiveVoices(),
			"dropped", status.Stats.DroppedNotes)
	}

	if h.maxDuration > 0 && status.Uptime >= h.maxDuration {
		slog.Info("Headless execution completed", "reason", "time limit", "uptime", status.Uptime.Round(time.Millisecond))
		return []backend.Action{backend.Quit}, nil
	}

	switch status.State {
	case sequencer.Finished, sequencer.Stopped, sequencer.Idle:
		slog.Info("Headless execution completed",
			"song", status.Song,
			"state", status.State,
			"samples", status.Stats.SamplesRendered,
			"dropped", status.Stats.DroppedNotes)
		return []backend.Action{backend.Quit}, nil
	}

	return nil, nil
}

func (h *Backend) Cleanup() error {
	slog.Debug("Headless backend stopped", "updates", h.updates)
	return nil
}
