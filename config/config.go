package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration to support YAML unmarshalling from strings.
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses duration strings like "5s" or "100ms".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return fmt.Errorf("duration value node is nil")
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}
	return d.set(raw)
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// UnmarshalJSON accepts the same strings as UnmarshalYAML.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}
	return d.set(raw)
}

// MarshalJSON renders the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

func (d *Duration) set(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Duration = 0
		return nil
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	d.Duration = dur
	return nil
}

// SampleRate is a sample rate in hertz. In YAML it may be written as a plain
// integer or as an SI string such as "200k" or "1.5 MHz".
type SampleRate uint64

// UnmarshalYAML decodes integers and SI strings.
func (r *SampleRate) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return fmt.Errorf("sample rate value node is nil")
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode sample rate: %w", err)
	}
	hz, err := ParseSampleRate(raw)
	if err != nil {
		return err
	}
	*r = SampleRate(hz)
	return nil
}

// MarshalYAML renders the rate with an SI suffix.
func (r SampleRate) MarshalYAML() (interface{}, error) {
	return FormatSampleRate(uint64(r)), nil
}

// UnmarshalJSON accepts a number or an SI string.
func (r *SampleRate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	hz, err := ParseSampleRate(raw)
	if err != nil {
		return err
	}
	*r = SampleRate(hz)
	return nil
}

// Hz returns the rate as an integer.
func (r SampleRate) Hz() uint64 { return uint64(r) }

// LimitsConfig bounds an acquisition. Zero values disable a limit.
type LimitsConfig struct {
	Samples uint64   `yaml:"samples" json:"samples"`
	Time    Duration `yaml:"time" json:"time"`
	Frames  uint64   `yaml:"frames" json:"frames"`
}

// AveragingConfig enables analog decimation. Samples == 0 averages the
// whole run into one value per channel.
type AveragingConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Samples uint64 `yaml:"samples" json:"samples"`
}

// LogicConfig configures the digital channel group.
type LogicConfig struct {
	Channels int    `yaml:"channels" json:"channels"`
	Pattern  string `yaml:"pattern" json:"pattern"`
	// Enabled lists channel indices to keep enabled. Empty enables all.
	Enabled  []int  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Seed     *int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// AnalogChannelConfig overrides the defaults of one analog channel.
type AnalogChannelConfig struct {
	Index      int      `yaml:"index" json:"index"`
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Pattern    string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Amplitude  *float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	Expression string   `yaml:"expression,omitempty" json:"expression,omitempty"`
	Disable    bool     `yaml:"disable,omitempty" json:"disable,omitempty"`
}

// AnalogConfig configures the analog channel group.
type AnalogConfig struct {
	Channels  int                   `yaml:"channels" json:"channels"`
	Amplitude float64               `yaml:"amplitude" json:"amplitude"`
	Overrides []AnalogChannelConfig `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// Override returns the override entry for channel index, if any.
func (a AnalogConfig) Override(index int) (AnalogChannelConfig, bool) {
	for _, o := range a.Overrides {
		if o.Index == index {
			return o, true
		}
	}
	return AnalogChannelConfig{}, false
}

// LokiConfig configures optional Loki integration for logging.
type LokiConfig struct {
	Enabled bool              `yaml:"enabled" json:"enabled"`
	URL     string            `yaml:"url" json:"url"`
	Labels  map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// FileLogConfig configures an optional rotating log file.
type FileLogConfig struct {
	Path       string `yaml:"path,omitempty" json:"path,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" json:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty" json:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty" json:"max_age_days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty" json:"compress,omitempty"`
}

// LoggingConfig encapsulates runtime logging options.
type LoggingConfig struct {
	Level  string        `yaml:"level" json:"level"`
	Format string        `yaml:"format,omitempty" json:"format,omitempty"`
	File   FileLogConfig `yaml:"file,omitempty" json:"file"`
	Loki   LokiConfig    `yaml:"loki" json:"loki"`
}

// TelemetryConfig configures runtime telemetry exporters.
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Listen  string `yaml:"listen,omitempty" json:"listen,omitempty"`
}

// MQTTTLSConfig configures TLS for the MQTT publisher.
type MQTTTLSConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	CAFile             string `yaml:"ca_file,omitempty" json:"ca_file,omitempty"`
	CertFile           string `yaml:"cert_file,omitempty" json:"cert_file,omitempty"`
	KeyFile            string `yaml:"key_file,omitempty" json:"key_file,omitempty"`
	ServerName         string `yaml:"server_name,omitempty" json:"server_name,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty" json:"insecure_skip_verify,omitempty"`
}

// MQTTConfig configures publishing of acquisition packets to an MQTT
// broker. An empty broker disables the publisher.
type MQTTConfig struct {
	Broker         string        `yaml:"broker,omitempty" json:"broker,omitempty"`
	ClientID       string        `yaml:"client_id,omitempty" json:"client_id,omitempty"`
	Topic          string        `yaml:"topic,omitempty" json:"topic,omitempty"`
	QoS            int           `yaml:"qos,omitempty" json:"qos,omitempty"`
	Username       string        `yaml:"username,omitempty" json:"username,omitempty"`
	Password       string        `yaml:"password,omitempty" json:"password,omitempty"`
	ConnectTimeout Duration      `yaml:"connect_timeout,omitempty" json:"connect_timeout"`
	TLS            MQTTTLSConfig `yaml:"tls,omitempty" json:"tls"`
}

// CaptureConfig configures the built-in packet consumers.
type CaptureConfig struct {
	NPYDir  string     `yaml:"npy_dir,omitempty" json:"npy_dir,omitempty"`
	Summary bool       `yaml:"summary" json:"summary"`
	MQTT    MQTTConfig `yaml:"mqtt,omitempty" json:"mqtt"`
}

// Config is the root configuration structure of the generator.
type Config struct {
	Name       string          `yaml:"name,omitempty" json:"name,omitempty"`
	Cycle      Duration        `yaml:"cycle" json:"cycle"`
	SampleRate SampleRate      `yaml:"sample_rate" json:"sample_rate"`
	Limits     LimitsConfig    `yaml:"limits" json:"limits"`
	Averaging  AveragingConfig `yaml:"averaging" json:"averaging"`
	FrameSize  uint64          `yaml:"frame_size" json:"frame_size"`
	Logic      LogicConfig     `yaml:"logic" json:"logic"`
	Analog     AnalogConfig    `yaml:"analog" json:"analog"`
	Capture    CaptureConfig   `yaml:"capture" json:"capture"`
	Logging    LoggingConfig   `yaml:"logging" json:"logging"`
	Telemetry  TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

// Default returns the configuration of a freshly attached demo device.
func Default() *Config {
	return &Config{
		Cycle:      Duration{Duration: 100 * time.Millisecond},
		SampleRate: 200_000,
		Logic: LogicConfig{
			Channels: 8,
			Pattern:  "sigrok",
		},
		Analog: AnalogConfig{
			Channels:  4,
			Amplitude: 10,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads, decodes and validates the configuration file at path. YAML
// files (.yaml, .yml) and CUE files (.cue) are accepted; keys missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path must not be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", abs, err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".cue":
		cfg, err = decodeCUE(abs, data)
	default:
		cfg, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of Default. It does not validate.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func decodeCUE(path string, data []byte) (*Config, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile cue %s: %w", filepath.Base(path), err)
	}
	cfg := Default()
	if err := value.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode cue: %w", err)
	}
	return cfg, nil
}

// CycleInterval returns the configured trigger period.
func (c *Config) CycleInterval() time.Duration {
	if c == nil || c.Cycle.Duration <= 0 {
		return 100 * time.Millisecond
	}
	return c.Cycle.Duration
}
