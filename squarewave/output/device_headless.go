//go:build headless

package output

import "errors"

// Device stub for builds without a sound card backend.
type Device struct{}

func NewDevice(sampleRate, bufferFrames int) (*Device, error) {
	return nil, errors.New("audio device not available - build without the headless tag")
}

func (d *Device) WriteSample(sample int16) error {
	return ErrClosed
}

func (d *Device) Close() error {
	return nil
}
