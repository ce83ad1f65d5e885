package song

import (
	"errors"
	"fmt"
)

var (
	ErrNoData    = errors.New("song has no event data")
	ErrNoEvents  = errors.New("song has no events")
	ErrTruncated = errors.New("song data shorter than its event count")
	ErrTooLong   = errors.New("song has more than 65535 events")
	ErrPartial   = errors.New("song data is not a whole number of events")
)

// Song is a read-only event stream with its tempo.
type Song struct {
	Name       string
	Data       *Span // nil when the song reference is empty
	EventCount uint16
	BPM        float32
}

// New builds a song over an encoded event stream. The event count is derived
// from the data length.
func New(name string, bpm float32, data []byte) (*Song, error) {
	if len(data)%EventSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrPartial, len(data))
	}
	count := len(data) / EventSize
	if count > 0xFFFF {
		return nil, fmt.Errorf("%w: %d", ErrTooLong, count)
	}
	return &Song{
		Name:       name,
		Data:       NewSpan(data),
		EventCount: uint16(count),
		BPM:        bpm,
	}, nil
}

// MustNew is New that panics on malformed data. It is meant for songs
// compiled into the binary.
func MustNew(name string, bpm float32, data []byte) *Song {
	s, err := New(name, bpm, data)
	if err != nil {
		panic(fmt.Sprintf("song %q: %v", name, err))
	}
	return s
}

// Validate checks that the song can be played.
func (s *Song) Validate() error {
	if s == nil || s.Data == nil {
		return ErrNoData
	}
	if s.EventCount == 0 {
		return ErrNoEvents
	}
	if need := int(s.EventCount) * EventSize; s.Data.Len() < need {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, s.Data.Len())
	}
	return nil
}

// Event decodes the event at index.
func (s *Song) Event(index int) (Event, error) {
	if index < 0 || index >= int(s.EventCount) {
		return Event{}, fmt.Errorf("%w: event %d of %d", ErrOutOfRange, index, s.EventCount)
	}
	return DecodeEvent(s.Data, index)
}

// Delta reads only the delta-time of the event at index.
func (s *Song) Delta(index int) (uint16, error) {
	if index < 0 || index >= int(s.EventCount) {
		return 0, fmt.Errorf("%w: event %d of %d", ErrOutOfRange, index, s.EventCount)
	}
	return s.Data.Uint16BE(index*EventSize + offsetDelta)
}

// TotalTicks sums every delta in the song.
func (s *Song) TotalTicks() (uint64, error) {
	var total uint64
	for i := 0; i < int(s.EventCount); i++ {
		d, err := s.Delta(i)
		if err != nil {
			return total, err
		}
		total += uint64(d)
	}
	return total, nil
}

func (s *Song) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%d events, %.1f BPM)", s.Name, s.EventCount, s.BPM)
}
