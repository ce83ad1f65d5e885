package audio

// Defaults match the reference hardware: 16-bit stereo I2S at 44.1 kHz with
// eight voices.
const (
	DefaultSampleRate = 44100
	DefaultMaxVoices  = 8

	// DefaultMaxNoteAmplitude is the peak of a single voice at velocity 127.
	// Mixing averages voices, so this is also the loudest possible output.
	DefaultMaxNoteAmplitude = 16000
)

// Output sample limits
const (
	maxSampleValue = 32767
	minSampleValue = -32768
	silence        = 0
)

// MIDI tuning
const (
	referenceNote      = 69 // A4
	referenceFrequency = 440.0
	maxVelocity        = 127
)
