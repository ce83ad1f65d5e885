package output

import "errors"

// ErrClosed is returned by WriteSample once an output has been closed.
var ErrClosed = errors.New("output closed")

// Output accepts rendered samples.
type Output interface {
	// WriteSample submits one mono sample, duplicated on both channels. It
	// blocks until the output has room for it.
	WriteSample(sample int16) error
}

// Channels is the number of interleaved channels every output produces.
const Channels = 2

// BytesPerFrame is the size of one packed stereo frame.
const BytesPerFrame = 4

// PackStereo duplicates a mono sample into a left/right frame, left channel in
// the low half.
func PackStereo(sample int16) uint32 {
	s := uint32(uint16(sample))
	return s<<16 | s
}

// Left returns the left channel of a packed frame.
func Left(frame uint32) int16 {
	return int16(uint16(frame))
}

// Right returns the right channel of a packed frame.
func Right(frame uint32) int16 {
	return int16(uint16(frame >> 16))
}
