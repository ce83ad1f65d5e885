package voice

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size table of voices shared between the note dispatcher and
// the render loop. Every method takes the pool lock itself, so callers never
// need to hold it.
type Pool struct {
	// mu guards voices. It is held once per output sample by the render loop
	// and once per note event by the dispatcher.
	mu     sync.Mutex
	voices []Voice

	sampleRate int
	dropped    atomic.Uint64
}

// NewPool creates a pool of capacity voices rendering at sampleRate. The table
// is allocated once and never grows.
func NewPool(capacity, sampleRate int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		voices:     make([]Voice, capacity),
		sampleRate: sampleRate,
	}
}

// HalfPeriodSamples returns the number of output samples per half cycle of
// frequency, never less than 1. A non-positive frequency returns 0.
func HalfPeriodSamples(sampleRate int, frequency float64) int {
	if frequency <= 0 || sampleRate <= 0 {
		return 0
	}
	n := int(math.Round(float64(sampleRate) / (2 * frequency)))
	if n < 1 {
		return 1
	}
	return n
}

// Allocate starts a voice for note. An existing voice playing the same note is
// stopped first so a re-trigger never leaves a stuck note. When every slot is
// busy the request is dropped; there is no voice stealing.
func (p *Pool) Allocate(note int, frequency float64, amplitude int16) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.findActive(note); i >= 0 {
		p.voices[i].deactivate()
	}

	slot := p.findFree()
	if slot < 0 {
		p.dropped.Add(1)
		slog.Warn("No free voices, note dropped", "note", note, "capacity", len(p.voices))
		return -1, false
	}

	v := &p.voices[slot]
	v.Active = true
	v.Note = note
	v.Frequency = frequency
	v.TargetAmplitude = amplitude
	v.HalfPeriod = HalfPeriodSamples(p.sampleRate, frequency)

	if v.HalfPeriod <= 0 || v.TargetAmplitude == 0 {
		slog.Warn("Cannot start note",
			"note", note,
			"frequency", frequency,
			"amplitude", amplitude,
			"half_period", v.HalfPeriod)
		v.deactivate()
		return -1, false
	}

	// Start high; the first flip happens after a full half period.
	v.CurrentOutput = v.TargetAmplitude
	v.Countdown = v.HalfPeriod
	return slot, true
}

// Free silences the voice playing note, if any. The voice contributes zero to
// the very next mixed sample.
func (p *Pool) Free(note int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.findActive(note); i >= 0 {
		p.voices[i].deactivate()
	}
}

// FindActive returns the slot playing note.
func (p *Pool) FindActive(note int) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.findActive(note)
	return i, i >= 0
}

// ForEachActive calls fn for every active voice while holding the pool lock.
// fn must not block or call back into the pool.
func (p *Pool) ForEachActive(fn func(v *Voice)) {
	p.mu.Lock()
	for i := range p.voices {
		if p.voices[i].Active {
			fn(&p.voices[i])
		}
	}
	p.mu.Unlock()
}

// Render advances every active voice by one sample under the pool lock and
// returns the sum of their outputs with the number of voices summed.
func (p *Pool) Render() (sum int32, active int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.voices {
		if p.voices[i].Active {
			sum += int32(p.voices[i].Advance())
			active++
		}
	}
	return sum, active
}

// AllOff silences every voice.
func (p *Pool) AllOff() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.voices {
		p.voices[i].deactivate()
	}
}

// Snapshot copies the whole table.
func (p *Pool) Snapshot() []State {
	p.mu.Lock()
	defer p.mu.Unlock()

	states := make([]State, len(p.voices))
	for i, v := range p.voices {
		states[i] = State{
			Slot:      i,
			Active:    v.Active,
			Note:      v.Note,
			Frequency: v.Frequency,
			Amplitude: v.TargetAmplitude,
			Output:    v.CurrentOutput,
		}
	}
	return states
}

// Active returns the number of sounding voices.
func (p *Pool) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for i := range p.voices {
		if p.voices[i].Active {
			n++
		}
	}
	return n
}

// Capacity returns the fixed number of slots.
func (p *Pool) Capacity() int {
	return len(p.voices)
}

// Dropped returns how many note-on requests found no free slot.
func (p *Pool) Dropped() uint64 {
	return p.dropped.Load()
}

func (p *Pool) findActive(note int) int {
	for i := range p.voices {
		if p.voices[i].Active && p.voices[i].Note == note {
			return i
		}
	}
	return -1
}

func (p *Pool) findFree() int {
	for i := range p.voices {
		if !p.voices[i].Active {
			return i
		}
	}
	return -1
}
