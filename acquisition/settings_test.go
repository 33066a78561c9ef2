package acquisition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/timzifer/siggen/config"
	"github.com/timzifer/siggen/patterns"
)

func TestSettingsFromDefaultConfig(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	require.Equal(t, uint64(200_000), s.SampleRate)
	require.Equal(t, 8, s.Logic.Channels)
	require.Nil(t, s.Logic.Enabled)
	require.Equal(t, 8, s.Logic.EnabledCount())
	require.Equal(t, patterns.LogicSigrok, s.Logic.Pattern)
	require.Len(t, s.Analog, 4)
	for i, ch := range s.Analog {
		require.Equal(t, patterns.DefaultAnalog(i), ch.Spec.Pattern)
		require.Equal(t, 10.0, ch.Spec.Amplitude)
		require.True(t, ch.Enabled)
	}
	require.Equal(t, "A2", s.Analog[2].Name)
}

func TestSettingsFromConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Limits.Time = config.Duration{Duration: 1500 * time.Microsecond}
	cfg.Logic.Enabled = []int{1, 3}
	cfg.Logic.Pattern = "walking-zero"
	amplitude := 2.5
	cfg.Analog.Overrides = []config.AnalogChannelConfig{
		{Index: 0, Name: "ramp", Pattern: "expression", Expression: "i", Amplitude: &amplitude},
		{Index: 3, Disable: true},
	}

	s, err := SettingsFromConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, uint64(1), s.LimitMsec)
	require.Equal(t, []bool{false, true, false, true, false, false, false, false}, s.Logic.Enabled)
	require.Equal(t, 2, s.Logic.EnabledCount())
	require.Equal(t, patterns.LogicWalkingZero, s.Logic.Pattern)

	require.Equal(t, "ramp", s.Analog[0].Name)
	require.Equal(t, patterns.AnalogExpression, s.Analog[0].Spec.Pattern)
	require.Equal(t, "i", s.Analog[0].Spec.Expression.String())
	require.Equal(t, 2.5, s.Analog[0].Spec.Amplitude)
	require.False(t, s.Analog[3].Enabled)
}

func TestSettingsFromConfigDisabledLogic(t *testing.T) {
	cfg := config.Default()
	cfg.Logic.Disabled = true
	s, err := SettingsFromConfig(cfg)
	require.NoError(t, err)
	require.Zero(t, s.Logic.EnabledCount())
	require.NoError(t, s.Validate())

	cfg.Analog.Channels = 0
	s, err = SettingsFromConfig(cfg)
	require.NoError(t, err)
	require.ErrorIs(t, s.Validate(), ErrConfig)
}

func TestSettingsFromConfigCollectsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Logic.Pattern = "zigzag"
	cfg.Logic.Enabled = []int{9}
	cfg.Analog.Overrides = []config.AnalogChannelConfig{
		{Index: 1, Pattern: "noise"},
		{Index: 2, Pattern: "expression"},
		{Index: 3, Expression: "sin("},
		{Index: 9, Pattern: "sine"},
	}
	_, err := SettingsFromConfig(cfg)
	require.ErrorIs(t, err, ErrConfig)
	for _, fragment := range []string{"zigzag", "logic channel 9", "noise", "A2", "A3", "channel 9 out of range"} {
		require.ErrorContains(t, err, fragment)
	}

	_, err = SettingsFromConfig(nil)
	require.ErrorIs(t, err, ErrConfig)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	s := Settings{Logic: LogicSettings{Channels: 4, Enabled: []bool{true}}}
	err := s.Validate()
	require.ErrorIs(t, err, ErrConfig)
	require.ErrorContains(t, err, "sample rate")
	require.ErrorContains(t, err, "enable mask")
}

func TestLogicChannelName(t *testing.T) {
	require.Equal(t, "D7", LogicChannelName(7))
}
