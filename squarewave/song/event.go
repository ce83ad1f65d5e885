package song

import "fmt"

// EventSize is the encoded size of one event in bytes.
const EventSize = 6

// Byte offsets inside an encoded event
const (
	offsetDelta    = 0 // uint16 big-endian
	offsetKind     = 2
	offsetNote     = 3
	offsetVelocity = 4
	offsetChannel  = 5
)

// Kind identifies what an event does.
type Kind uint8

const (
	NoteOff Kind = 0
	NoteOn  Kind = 1
)

func (k Kind) String() string {
	switch k {
	case NoteOff:
		return "note-off"
	case NoteOn:
		return "note-on"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is one decoded entry of the event stream.
type Event struct {
	Delta    uint16 // Ticks since the previous event
	Kind     Kind
	Note     uint8
	Velocity uint8
	// Channel is the reserved byte. The song converter stores the source MIDI
	// channel there; playback ignores it.
	Channel uint8
}

// DecodeEvent reads the event at index from span.
func DecodeEvent(span *Span, index int) (Event, error) {
	raw, err := span.Slice(index*EventSize, EventSize)
	if err != nil {
		return Event{}, fmt.Errorf("event %d: %w", index, err)
	}
	return Event{
		Delta:    uint16(raw[offsetDelta])<<8 | uint16(raw[offsetDelta+1]),
		Kind:     Kind(raw[offsetKind]),
		Note:     raw[offsetNote],
		Velocity: raw[offsetVelocity],
		Channel:  raw[offsetChannel],
	}, nil
}

// Encode serializes events into the stream format.
func Encode(events []Event) []byte {
	out := make([]byte, 0, len(events)*EventSize)
	for _, e := range events {
		out = append(out,
			byte(e.Delta>>8), byte(e.Delta),
			byte(e.Kind), e.Note, e.Velocity, e.Channel)
	}
	return out
}
