package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSampleRate = 44100

func TestHalfPeriodSamples(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		want      int
	}{
		{"A4", 440, 50},         // 44100 / 880 = 50.11
		{"A3", 220, 100},        // 44100 / 440 = 100.23
		{"very high", 1e6, 1},   // would round to 0
		{"zero", 0, 0},          // rejected
		{"negative", -440, 0},   // rejected
		{"nyquist", 22050, 1},   // exactly one sample
		{"low C", 8.1758, 2697}, // note 0 territory
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HalfPeriodSamples(testSampleRate, tt.frequency))
		})
	}
}

func TestPool_Allocate(t *testing.T) {
	p := NewPool(4, testSampleRate)

	slot, ok := p.Allocate(60, 261.63, 1000)
	require.True(t, ok)
	assert.Equal(t, 0, slot)

	states := p.Snapshot()
	assert.True(t, states[0].Active)
	assert.Equal(t, 60, states[0].Note)
	assert.Equal(t, int16(1000), states[0].Amplitude)
	assert.Equal(t, int16(1000), states[0].Output, "voice should start high")

	slot, ok = p.FindActive(60)
	assert.True(t, ok)
	assert.Equal(t, 0, slot)

	_, ok = p.FindActive(61)
	assert.False(t, ok)
}

func TestPool_Exhaustion(t *testing.T) {
	p := NewPool(3, testSampleRate)

	for i, note := range []int{60, 64, 67} {
		slot, ok := p.Allocate(note, 440, int16(100*(i+1)))
		require.True(t, ok)
		require.Equal(t, i, slot)
	}
	before := p.Snapshot()

	slot, ok := p.Allocate(72, 523.25, 999)
	assert.False(t, ok, "allocation beyond capacity must be dropped")
	assert.Equal(t, -1, slot)
	assert.Equal(t, uint64(1), p.Dropped())
	assert.Equal(t, before, p.Snapshot(), "existing voices must be untouched")

	_, ok = p.FindActive(72)
	assert.False(t, ok)
}

func TestPool_Retrigger(t *testing.T) {
	p := NewPool(4, testSampleRate)

	_, ok := p.Allocate(60, 261.63, 1000)
	require.True(t, ok)
	_, ok = p.Allocate(60, 261.63, 2000)
	require.True(t, ok)

	count := 0
	var amplitude int16
	p.ForEachActive(func(v *Voice) {
		if v.Note == 60 {
			count++
			amplitude = v.TargetAmplitude
		}
	})
	assert.Equal(t, 1, count, "re-trigger must leave a single voice")
	assert.Equal(t, int16(2000), amplitude)
}

func TestPool_RetriggerWhenFull(t *testing.T) {
	p := NewPool(2, testSampleRate)

	_, ok := p.Allocate(60, 261.63, 1000)
	require.True(t, ok)
	_, ok = p.Allocate(62, 293.66, 1000)
	require.True(t, ok)

	// The old voice for 60 frees its own slot, so the re-trigger succeeds.
	slot, ok := p.Allocate(60, 261.63, 500)
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 2, p.Active())
}

func TestPool_Free(t *testing.T) {
	p := NewPool(2, testSampleRate)

	_, ok := p.Allocate(60, 261.63, 1000)
	require.True(t, ok)

	p.Free(60)
	states := p.Snapshot()
	assert.False(t, states[0].Active)
	assert.Equal(t, int16(0), states[0].Output, "output must drop to silence immediately")

	// Freeing a note that is not playing is harmless.
	p.Free(99)
	assert.Equal(t, 0, p.Active())
}

func TestPool_RejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		amplitude int16
	}{
		{"zero frequency", 0, 1000},
		{"negative frequency", -10, 1000},
		{"zero amplitude", 440, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(2, testSampleRate)
			slot, ok := p.Allocate(69, tt.frequency, tt.amplitude)
			assert.False(t, ok)
			assert.Equal(t, -1, slot)
			assert.Equal(t, 0, p.Active())
			assert.Equal(t, uint64(0), p.Dropped(), "rejections are not capacity drops")
		})
	}
}

func TestPool_AllOff(t *testing.T) {
	p := NewPool(4, testSampleRate)
	for _, note := range []int{60, 64, 67} {
		_, ok := p.Allocate(note, 440, 1000)
		require.True(t, ok)
	}

	p.AllOff()
	assert.Equal(t, 0, p.Active())
	for _, s := range p.Snapshot() {
		assert.Equal(t, int16(0), s.Output)
	}
}

func TestVoice_Advance(t *testing.T) {
	v := Voice{Active: true, TargetAmplitude: 100, CurrentOutput: 100, HalfPeriod: 3, Countdown: 3}

	var got []int16
	for range 12 {
		got = append(got, v.Advance())
	}

	want := []int16{100, 100, 100, -100, -100, -100, 100, 100, 100, -100, -100, -100}
	assert.Equal(t, want, got, "each polarity should last exactly one half period")
}

func TestVoice_AdvanceMinimumHalfPeriod(t *testing.T) {
	v := Voice{Active: true, TargetAmplitude: 10, CurrentOutput: 10, HalfPeriod: 1, Countdown: 1}

	var got []int16
	for range 4 {
		got = append(got, v.Advance())
	}
	assert.Equal(t, []int16{10, -10, 10, -10}, got)
}

func TestNewPool_MinimumCapacity(t *testing.T) {
	p := NewPool(0, testSampleRate)
	assert.Equal(t, 1, p.Capacity())
}

func TestPool_Render(t *testing.T) {
	p := NewPool(4, testSampleRate)

	sum, active := p.Render()
	assert.Zero(t, sum)
	assert.Zero(t, active)

	_, ok := p.Allocate(69, 440, 1000) // half period 50
	require.True(t, ok)
	_, ok = p.Allocate(57, 220, 3000) // half period 100
	require.True(t, ok)

	sum, active = p.Render()
	assert.Equal(t, int32(4000), sum)
	assert.Equal(t, 2, active)

	for range 49 {
		p.Render()
	}
	// The 440 Hz voice has flipped, the 220 Hz one has not.
	sum, active = p.Render()
	assert.Equal(t, int32(2000), sum)
	assert.Equal(t, 2, active)
}
