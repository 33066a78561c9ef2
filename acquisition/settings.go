package acquisition

import (
	"errors"
	"fmt"

	"github.com/timzifer/siggen/analog"
	"github.com/timzifer/siggen/config"
	"github.com/timzifer/siggen/logic"
	"github.com/timzifer/siggen/patterns"
)

var (
	// ErrConfig marks an acquisition that cannot start because its
	// configuration is unusable.
	ErrConfig = errors.New("configuration error")
	// ErrSampleCountMismatch marks a tick in which the logic and analog
	// kinds produced different sample counts.
	ErrSampleCountMismatch = errors.New("sample count mismatch")
	// ErrRunning is returned by operations that need an idle or stopped
	// scheduler.
	ErrRunning = errors.New("acquisition running")
)

// LogicSettings configures the logic channel group.
type LogicSettings struct {
	Channels int
	// Enabled has one entry per channel. Nil enables every channel.
	Enabled []bool
	Pattern patterns.Logic
	Seed    *int64
}

// EnabledCount returns the number of enabled logic channels.
func (l LogicSettings) EnabledCount() int {
	if l.Enabled == nil {
		return l.Channels
	}
	n := 0
	for i, on := range l.Enabled {
		if on && i < l.Channels {
			n++
		}
	}
	return n
}

// AnalogChannelSettings configures one analog channel.
type AnalogChannelSettings struct {
	Name    string
	Enabled bool
	Spec    analog.Spec
}

// Settings is the resolved, in-memory form of an acquisition configuration.
type Settings struct {
	SampleRate     uint64
	LimitSamples   uint64
	LimitMsec      uint64
	LimitFrames    uint64
	FrameSize      uint64
	Average        bool
	AverageSamples uint64
	Logic          LogicSettings
	Analog         []AnalogChannelSettings
}

// Validate reports every reason the settings cannot start an acquisition.
// The returned error wraps ErrConfig.
func (s Settings) Validate() error {
	var errs []error
	if s.SampleRate == 0 {
		errs = append(errs, errors.New("sample rate must be positive"))
	}
	if s.Logic.Channels < 0 || s.Logic.Channels > logic.MaxChannels {
		errs = append(errs, fmt.Errorf("logic channel count %d out of range", s.Logic.Channels))
	}
	if s.Logic.Enabled != nil && len(s.Logic.Enabled) != s.Logic.Channels {
		errs = append(errs, fmt.Errorf("logic enable mask has %d entries for %d channels", len(s.Logic.Enabled), s.Logic.Channels))
	}
	enabled := s.Logic.EnabledCount()
	for _, ch := range s.Analog {
		if ch.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		errs = append(errs, errors.New("no channel is enabled"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
}

// DefaultSettings mirrors config.Default.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.Default())
	if err != nil {
		panic(err)
	}
	return s
}

// SettingsFromConfig resolves cfg into Settings. Pattern names are parsed,
// expressions compiled and channel names assigned (D0.., A0..). Every
// problem is reported, wrapped in ErrConfig.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	if cfg == nil {
		return Settings{}, fmt.Errorf("%w: config is nil", ErrConfig)
	}
	var errs []error
	s := Settings{
		SampleRate:     cfg.SampleRate.Hz(),
		LimitSamples:   cfg.Limits.Samples,
		LimitFrames:    cfg.Limits.Frames,
		FrameSize:      cfg.FrameSize,
		Average:        cfg.Averaging.Enabled,
		AverageSamples: cfg.Averaging.Samples,
	}
	if d := cfg.Limits.Time.Duration; d > 0 {
		s.LimitMsec = uint64(d.Milliseconds())
		if s.LimitMsec == 0 {
			s.LimitMsec = 1
		}
	}

	pattern, err := patterns.ParseLogic(cfg.Logic.Pattern)
	if err != nil {
		errs = append(errs, err)
	}
	s.Logic = LogicSettings{
		Channels: cfg.Logic.Channels,
		Pattern:  pattern,
		Seed:     cfg.Logic.Seed,
	}
	switch {
	case cfg.Logic.Disabled:
		s.Logic.Enabled = make([]bool, max(cfg.Logic.Channels, 0))
	case len(cfg.Logic.Enabled) > 0:
		s.Logic.Enabled = make([]bool, max(cfg.Logic.Channels, 0))
		for _, idx := range cfg.Logic.Enabled {
			if idx < 0 || idx >= cfg.Logic.Channels {
				errs = append(errs, fmt.Errorf("logic channel %d out of range", idx))
				continue
			}
			s.Logic.Enabled[idx] = true
		}
	}

	for _, o := range cfg.Analog.Overrides {
		if o.Index < 0 || o.Index >= cfg.Analog.Channels {
			errs = append(errs, fmt.Errorf("analog override for channel %d out of range", o.Index))
		}
	}
	for i := 0; i < cfg.Analog.Channels; i++ {
		ch := AnalogChannelSettings{
			Name:    fmt.Sprintf("A%d", i),
			Enabled: true,
			Spec: analog.Spec{
				Pattern:   patterns.DefaultAnalog(i),
				Amplitude: cfg.Analog.Amplitude,
			},
		}
		if o, ok := cfg.Analog.Override(i); ok {
			if o.Name != "" {
				ch.Name = o.Name
			}
			if o.Pattern != "" {
				p, err := patterns.ParseAnalog(o.Pattern)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", ch.Name, err))
				}
				ch.Spec.Pattern = p
			}
			if o.Amplitude != nil {
				ch.Spec.Amplitude = *o.Amplitude
			}
			if o.Expression != "" {
				expr, err := analog.CompileExpression(o.Expression)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", ch.Name, err))
				}
				ch.Spec.Expression = expr
			}
			if ch.Spec.Pattern == patterns.AnalogExpression && ch.Spec.Expression == nil && o.Expression == "" {
				errs = append(errs, fmt.Errorf("%s: expression pattern needs an expression", ch.Name))
			}
			ch.Enabled = !o.Disable
		}
		s.Analog = append(s.Analog, ch)
	}

	if len(errs) > 0 {
		return s, fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
	}
	return s, nil
}

// LogicChannelName returns the conventional name of logic channel i.
func LogicChannelName(i int) string {
	return fmt.Sprintf("D%d", i)
}
