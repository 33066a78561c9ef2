package analog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/timzifer/siggen/patterns"
)

func TestSquareAlternatesEveryFiveSamples(t *testing.T) {
	data, err := Synthesize(Spec{Pattern: patterns.AnalogSquare, Amplitude: 2}, 1000)
	require.NoError(t, err)
	require.Len(t, data, 1020)
	require.Equal(t, []float32{-2, -2, -2, -2, -2, 2, 2, 2, 2, 2, -2}, data[:11])
}

func TestSineHalfPeriodSymmetry(t *testing.T) {
	data, err := Synthesize(Spec{Pattern: patterns.AnalogSine, Amplitude: 1}, 1000)
	require.NoError(t, err)
	require.Zero(t, len(data)%SamplesPerPeriod)
	require.InDelta(t, -data[0], data[len(data)/2], 1e-5)
	// Quarter and three-quarter period peaks.
	require.InDelta(t, 1.0, data[5], 1e-6)
	require.InDelta(t, -1.0, data[15], 1e-6)
	for i := 0; i < SamplesPerPeriod/2; i++ {
		require.InDelta(t, -data[i], data[i+SamplesPerPeriod/2], 1e-5)
	}
}

func TestTriangleAndSawtoothShapes(t *testing.T) {
	tri, err := Synthesize(Spec{Pattern: patterns.AnalogTriangle, Amplitude: 10}, 200000)
	require.NoError(t, err)
	require.Len(t, tri, 1020)
	require.InDelta(t, 0, tri[0], 1e-6)
	require.InDelta(t, 10, tri[5], 1e-4)
	require.InDelta(t, -10, tri[15], 1e-4)

	saw, err := Synthesize(Spec{Pattern: patterns.AnalogSawtooth, Amplitude: 10}, 200000)
	require.NoError(t, err)
	require.Len(t, saw, 1020)
	require.InDelta(t, 0, saw[0], 1e-6)
	require.InDelta(t, 1, saw[1], 1e-4)
	require.InDelta(t, -9, saw[11], 1e-4)
	require.InDelta(t, saw[3], saw[23], 1e-4)
}

func TestSynthesizeRejectsBadInput(t *testing.T) {
	_, err := Synthesize(Spec{Pattern: patterns.AnalogSine, Amplitude: 1}, 0)
	require.Error(t, err)
	_, err = Synthesize(Spec{Pattern: patterns.AnalogSine, Amplitude: math.NaN()}, 10)
	require.Error(t, err)
	_, err = Synthesize(Spec{Pattern: patterns.Analog(17), Amplitude: 1}, 10)
	require.ErrorIs(t, err, ErrUnknownPattern)
	_, err = Synthesize(Spec{Pattern: patterns.AnalogExpression, Amplitude: 1}, 10)
	require.Error(t, err)
}

func TestWaveformLengthIsWholePeriods(t *testing.T) {
	periodic := []patterns.Analog{patterns.AnalogSquare, patterns.AnalogSine, patterns.AnalogTriangle, patterns.AnalogSawtooth}
	rapid.Check(t, func(t *rapid.T) {
		pattern := rapid.SampledFrom(periodic).Draw(t, "pattern")
		rate := rapid.Uint64Range(1, 1<<40).Draw(t, "rate")
		size := rapid.IntRange(0, BufferSamples).Draw(t, "size")
		amplitude := rapid.Float64Range(-100, 100).Draw(t, "amplitude")

		data, err := synthesize(Spec{Pattern: pattern, Amplitude: amplitude}, rate, size)
		require.NoError(t, err)
		period := SamplesPerPeriod
		if pattern == patterns.AnalogSquare {
			period = SquarePeriod
		}
		require.Zero(t, len(data)%period)
		require.Greater(t, len(data), size-period)
		for _, v := range data {
			require.LessOrEqual(t, math.Abs(float64(v)), math.Abs(amplitude)+1e-3)
		}
	})
}
