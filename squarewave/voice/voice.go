package voice

// Voice is one square-wave oscillator slot.
type Voice struct {
	Active          bool
	Note            int
	Frequency       float64
	TargetAmplitude int16
	CurrentOutput   int16 // Oscillates between +TargetAmplitude and -TargetAmplitude
	HalfPeriod      int   // Output samples per half cycle
	Countdown       int   // Samples left before the next polarity flip
}

// Advance moves the waveform forward by one output sample and returns the
// value the voice contributes to the mix.
func (v *Voice) Advance() int16 {
	if v.Countdown == 0 {
		if v.CurrentOutput == v.TargetAmplitude {
			v.CurrentOutput = -v.TargetAmplitude
		} else {
			v.CurrentOutput = v.TargetAmplitude
		}
		v.Countdown = v.HalfPeriod
	}
	// Decrementing right after a reload keeps each polarity at exactly
	// HalfPeriod samples.
	if v.Countdown > 0 {
		v.Countdown--
	}
	return v.CurrentOutput
}

func (v *Voice) deactivate() {
	v.Active = false
	v.CurrentOutput = 0
	v.Countdown = 0
}

// State is a copy of a voice taken for display or diagnostics.
type State struct {
	Slot      int
	Active    bool
	Note      int
	Frequency float64
	Amplitude int16
	Output    int16
}
