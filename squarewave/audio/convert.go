package audio

import "math"

// NoteToFrequency converts a MIDI note number to Hz using equal temperament
// tuned to A4 = 440 Hz. Non-positive notes return 0, which the voice pool
// refuses to play.
func NoteToFrequency(note int) float64 {
	if note <= 0 {
		return 0
	}
	return referenceFrequency * math.Pow(2, float64(note-referenceNote)/12)
}

// VelocityToAmplitude scales a MIDI velocity linearly onto [0, maxAmplitude].
// Velocities outside 0-127 are clamped.
func VelocityToAmplitude(velocity, maxAmplitude int) int16 {
	velocity = min(max(velocity, 0), maxVelocity)
	amp := float64(velocity) / maxVelocity * float64(maxAmplitude)
	return int16(math.Round(amp))
}

// mix averages the summed voice outputs and clamps the result to the int16
// range. Averaging keeps the level constant as polyphony grows.
func mix(sum int32, active int) int16 {
	if active == 0 {
		return silence
	}

	mixed := math.Round(float64(sum) / float64(active))
	if mixed > maxSampleValue {
		return maxSampleValue
	}
	if mixed < minSampleValue {
		return minSampleValue
	}
	return int16(mixed)
}
