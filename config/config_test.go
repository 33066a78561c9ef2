package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	require.Equal(t, uint64(200_000), cfg.SampleRate.Hz())
	require.Equal(t, 8, cfg.Logic.Channels)
	require.Equal(t, 4, cfg.Analog.Channels)
	require.Equal(t, 100*time.Millisecond, cfg.CycleInterval())
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `sample_rate: 1.5 MHz
limits:
  samples: 5000
  time: 2s
logic:
  pattern: walking-one
  enabled: [0, 1, 2]
analog:
  overrides:
    - index: 1
      pattern: expression
      expression: amplitude * sin(2 * pi * i / 20)
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(1_500_000), cfg.SampleRate.Hz())
	require.Equal(t, uint64(5000), cfg.Limits.Samples)
	require.Equal(t, 2*time.Second, cfg.Limits.Time.Duration)
	require.Equal(t, "walking-one", cfg.Logic.Pattern)
	require.Equal(t, []int{0, 1, 2}, cfg.Logic.Enabled)
	require.Equal(t, 8, cfg.Logic.Channels)
	require.Equal(t, float64(10), cfg.Analog.Amplitude)

	override, ok := cfg.Analog.Override(1)
	require.True(t, ok)
	require.Equal(t, "expression", override.Pattern)
	_, ok = cfg.Analog.Override(3)
	require.False(t, ok)
}

func TestLoadCUE(t *testing.T) {
	path := writeConfig(t, "config.cue", `
sample_rate: "50k"
cycle: "20ms"
frame_size: 1000
logic: channels: 16
analog: channels: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(50_000), cfg.SampleRate.Hz())
	require.Equal(t, 20*time.Millisecond, cfg.CycleInterval())
	require.Equal(t, uint64(1000), cfg.FrameSize)
	require.Equal(t, 16, cfg.Logic.Channels)
	require.Equal(t, 0, cfg.Analog.Channels)
	require.Equal(t, "sigrok", cfg.Logic.Pattern)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"zero rate":        "sample_rate: 0\n",
		"unknown pattern":  "logic:\n  pattern: zigzag\n",
		"enabled range":    "logic:\n  channels: 4\n  enabled: [4]\n",
		"override range":   "analog:\n  channels: 2\n  overrides:\n    - index: 2\n      pattern: sine\n",
		"negative ampl":    "analog:\n  amplitude: -1\n",
		"bad log level":    "logging:\n  level: loud\n",
		"loki without url": "logging:\n  loki:\n    enabled: true\n    url: \"\"\n",
		"mqtt scheme":      "capture:\n  mqtt:\n    broker: localhost:1883\n",
		"mqtt qos":         "capture:\n  mqtt:\n    broker: tcp://localhost:1883\n    qos: 3\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.yaml", content))
			require.Error(t, err)
		})
	}
}

func TestLoadMQTTCapture(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", `capture:
  mqtt:
    broker: tcp://127.0.0.1:1883
    topic: lab/siggen
    qos: 1
    connect_timeout: 2s
`))
	require.NoError(t, err)
	require.Equal(t, "tcp://127.0.0.1:1883", cfg.Capture.MQTT.Broker)
	require.Equal(t, "lab/siggen", cfg.Capture.MQTT.Topic)
	require.Equal(t, 1, cfg.Capture.MQTT.QoS)
	require.Equal(t, 2*time.Second, cfg.Capture.MQTT.ConnectTimeout.Duration)
	require.False(t, cfg.Capture.MQTT.TLS.Enabled)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "config.yaml", "cycle: soon\n"))
	require.ErrorContains(t, err, "parse duration")

	_, err = Load(writeConfig(t, "config.yaml", "sample_rate: 1.5\n"))
	require.ErrorContains(t, err, "whole number")
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestDurationRoundTrip(t *testing.T) {
	d := Duration{Duration: 1500 * time.Millisecond}
	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `"1.5s"`, string(raw))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(raw))
	require.Equal(t, d, back)
}
