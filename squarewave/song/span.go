package song

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a read falls outside a Span.
var ErrOutOfRange = errors.New("read out of range")

// Span is a read-only, byte-addressable view of song data. Every accessor is
// bounds checked; the underlying bytes are never exposed for writing.
type Span struct {
	data []byte
}

// NewSpan wraps data. The caller must not modify data afterwards.
func NewSpan(data []byte) *Span {
	return &Span{data: data}
}

// Len returns the span size in bytes.
func (s *Span) Len() int {
	return len(s.data)
}

// Byte reads the byte at off.
func (s *Span) Byte(off int) (byte, error) {
	if off < 0 || off >= len(s.data) {
		return 0, fmt.Errorf("%w: byte at %d, span is %d bytes", ErrOutOfRange, off, len(s.data))
	}
	return s.data[off], nil
}

// Uint16BE reads a big-endian 16-bit value at off.
func (s *Span) Uint16BE(off int) (uint16, error) {
	if off < 0 || off+2 > len(s.data) {
		return 0, fmt.Errorf("%w: uint16 at %d, span is %d bytes", ErrOutOfRange, off, len(s.data))
	}
	return uint16(s.data[off])<<8 | uint16(s.data[off+1]), nil
}

// Slice returns a copy of n bytes starting at off.
func (s *Span) Slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(s.data) {
		return nil, fmt.Errorf("%w: %d bytes at %d, span is %d bytes", ErrOutOfRange, n, off, len(s.data))
	}
	out := make([]byte, n)
	copy(out, s.data[off:off+n])
	return out, nil
}
