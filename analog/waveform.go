// Package analog synthesizes the waveforms of the virtual instrument's analog
// channels and optionally decimates them with a running average.
package analog

import (
	"errors"
	"fmt"
	"math"

	"github.com/timzifer/siggen/patterns"
)

const (
	// BufferBytes is the pattern space reserved per channel.
	BufferBytes = 4096
	// BufferSamples is the number of float32 samples that fit into BufferBytes.
	BufferSamples = BufferBytes / 4
	// SamplesPerPeriod is the period of the sine, triangle, sawtooth and
	// expression waveforms, independent of the sample rate.
	SamplesPerPeriod = 20
	// SquarePeriod is the period of the square waveform.
	SquarePeriod = 10
)

// ErrUnknownPattern is returned when a waveform kind cannot be synthesized.
var ErrUnknownPattern = errors.New("unknown analog pattern")

// Spec selects the waveform of one channel.
type Spec struct {
	Pattern    patterns.Analog
	Amplitude  float64
	Expression *Expression
}

// Synthesize computes whole periods of the waveform described by spec for
// the given sample rate. The returned buffer can be replayed as a ring by
// indexing it modulo its length.
func Synthesize(spec Spec, sampleRate uint64) ([]float32, error) {
	return synthesize(spec, sampleRate, BufferSamples)
}

func synthesize(spec Spec, sampleRate uint64, numSamples int) ([]float32, error) {
	if sampleRate == 0 {
		return nil, errors.New("sample rate must be positive")
	}
	if math.IsNaN(spec.Amplitude) || math.IsInf(spec.Amplitude, 0) {
		return nil, fmt.Errorf("amplitude must be finite, got %v", spec.Amplitude)
	}
	rate := float64(sampleRate)
	frequency := rate / SamplesPerPeriod
	amplitude := spec.Amplitude

	switch spec.Pattern {
	case patterns.AnalogSquare:
		numSamples -= numSamples % SquarePeriod
		data := make([]float32, numSamples)
		value := float32(amplitude)
		for i := range data {
			if i%(SquarePeriod/2) == 0 {
				value = -value
			}
			data[i] = value
		}
		return data, nil
	case patterns.AnalogSine:
		return periodic(numSamples, func(i int) float64 {
			t := float64(i) / rate
			return amplitude * math.Sin(2*math.Pi*frequency*t)
		}), nil
	case patterns.AnalogTriangle:
		return periodic(numSamples, func(i int) float64 {
			t := float64(i) / rate
			return (2 * amplitude / math.Pi) * math.Asin(math.Sin(2*math.Pi*frequency*t))
		}), nil
	case patterns.AnalogSawtooth:
		return periodic(numSamples, func(i int) float64 {
			t := float64(i) / rate
			return 2 * amplitude * (t*frequency - math.Floor(0.5+t*frequency))
		}), nil
	case patterns.AnalogExpression:
		if spec.Expression == nil {
			return nil, errors.New("expression pattern requires an expression")
		}
		numSamples -= numSamples % SamplesPerPeriod
		return spec.Expression.evaluate(numSamples, rate, amplitude)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, int(spec.Pattern))
	}
}

func periodic(numSamples int, sample func(i int) float64) []float32 {
	numSamples -= numSamples % SamplesPerPeriod
	data := make([]float32, numSamples)
	for i := range data {
		data[i] = float32(sample(i))
	}
	return data
}
