package analog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timzifer/siggen/patterns"
)

func TestChannelReadWrapsRing(t *testing.T) {
	ch := NewChannel(0, "A0", Spec{Pattern: patterns.AnalogSquare, Amplitude: 1}, 0)
	require.Zero(t, ch.Len())
	require.Nil(t, ch.Read(10))

	require.NoError(t, ch.Configure(1000))
	require.Equal(t, 1020, ch.Len())

	first := ch.Read(1000)
	require.Len(t, first, 1000)
	require.Equal(t, 1000, ch.Cursor())
	require.Equal(t, 20, ch.Available())

	tail := ch.Read(100)
	require.Len(t, tail, 20)
	require.Zero(t, ch.Cursor())

	again := ch.Read(5)
	require.Equal(t, first[:5], again)
}

func TestChannelSetSpecRecomputesWaveform(t *testing.T) {
	ch := NewChannel(1, "A1", Spec{Pattern: patterns.AnalogSine, Amplitude: 1}, 0)
	require.NoError(t, ch.SetSpec(Spec{Pattern: patterns.AnalogSine, Amplitude: 4}))
	require.Zero(t, ch.Len(), "no sample rate yet")

	require.NoError(t, ch.Configure(2000))
	require.InDelta(t, 4, ch.Read(6)[5], 1e-5)

	err := ch.SetSpec(Spec{Pattern: patterns.Analog(12), Amplitude: 4})
	require.ErrorIs(t, err, ErrUnknownPattern)
	require.Zero(t, ch.Len())
	require.Zero(t, ch.Cursor())
}

func TestChannelRewindAndSingle(t *testing.T) {
	ch := NewChannel(2, "A2", Spec{Pattern: patterns.AnalogTriangle, Amplitude: 1}, 2)
	require.NoError(t, ch.Configure(100))
	ch.Read(7)
	ch.Averager().Fold([]float32{1})
	ch.Rewind()
	require.Zero(t, ch.Cursor())
	require.Zero(t, ch.Averager().Pending())

	out := ch.Single(3.5)
	require.Equal(t, []float32{3.5}, out)
	require.Equal(t, "A2[triangle amplitude=1]", ch.String())
	require.Equal(t, 2, ch.ID())
	require.Equal(t, "A2", ch.Name())
}
