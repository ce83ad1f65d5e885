package input

import (
	"time"

	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

// DefaultDebounceDelay swallows key repeat for held keys.
const DefaultDebounceDelay = 300 * time.Millisecond

// Handler filters backend actions, debouncing repeated presses of the same
// action. Quit is never debounced.
type Handler struct {
	clock          timing.Clock
	lastActionTime map[backend.Action]time.Time
	debounceDelay  time.Duration
}

func NewHandler(clock timing.Clock, delay time.Duration) *Handler {
	return &Handler{
		clock:          clock,
		lastActionTime: make(map[backend.Action]time.Time),
		debounceDelay:  delay,
	}
}

// Accept reports whether act should be handled, recording it if so.
func (h *Handler) Accept(act backend.Action) bool {
	if act == backend.Quit {
		return true
	}

	now := h.clock.Now()
	if lastTime, exists := h.lastActionTime[act]; exists {
		if now.Sub(lastTime) < h.debounceDelay {
			return false
		}
	}
	h.lastActionTime[act] = now
	return true
}

// Filter returns the accepted subset of actions, in order.
func (h *Handler) Filter(actions []backend.Action) []backend.Action {
	accepted := actions[:0:0]
	for _, act := range actions {
		if h.Accept(act) {
			accepted = append(accepted, act)
		}
	}
	return accepted
}
