package processor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/patterns"
)

// applyLiveChanges pushes the pattern related parts of next into a running
// scheduler. Structural changes are only logged; they take effect with the
// next acquisition.
func applyLiveChanges(s *acquisition.Scheduler, next acquisition.Settings, logger zerolog.Logger) error {
	cur := s.Settings()
	if fields := restartFields(cur, next); len(fields) > 0 {
		logger.Warn().Strs("fields", fields).Msg("configuration change requires a new acquisition")
	}

	var errs []error
	if cur.Logic.Channels > 0 && next.Logic.Channels == cur.Logic.Channels && next.Logic.Pattern != cur.Logic.Pattern {
		if err := s.SetLogicPattern(next.Logic.Pattern); err != nil {
			errs = append(errs, err)
		}
	}
	for i := range min(len(cur.Analog), len(next.Analog)) {
		old, spec := cur.Analog[i].Spec, next.Analog[i].Spec
		if spec.Pattern == patterns.AnalogExpression {
			if old.Pattern != spec.Pattern || old.Expression.String() != spec.Expression.String() {
				if err := s.SetAnalogExpression(i, spec.Expression); err != nil {
					errs = append(errs, fmt.Errorf("analog channel %d: %w", i, err))
				}
			}
		} else if old.Pattern != spec.Pattern {
			if err := s.SetAnalogPattern(i, spec.Pattern); err != nil {
				errs = append(errs, fmt.Errorf("analog channel %d: %w", i, err))
			}
		}
		if old.Amplitude != spec.Amplitude {
			if err := s.SetAnalogAmplitude(i, spec.Amplitude); err != nil {
				errs = append(errs, fmt.Errorf("analog channel %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

func restartFields(cur, next acquisition.Settings) []string {
	var fields []string
	check := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}
	check("sample_rate", cur.SampleRate != next.SampleRate)
	check("limits.samples", cur.LimitSamples != next.LimitSamples)
	check("limits.time", cur.LimitMsec != next.LimitMsec)
	check("limits.frames", cur.LimitFrames != next.LimitFrames)
	check("frame_size", cur.FrameSize != next.FrameSize)
	check("averaging", cur.Average != next.Average || cur.AverageSamples != next.AverageSamples)
	check("logic.channels", cur.Logic.Channels != next.Logic.Channels)
	check("logic.enabled", !slices.Equal(cur.Logic.Enabled, next.Logic.Enabled))
	check("analog.channels", !slices.EqualFunc(cur.Analog, next.Analog, sameAnalogLayout))
	return fields
}

func sameAnalogLayout(a, b acquisition.AnalogChannelSettings) bool {
	return a.Name == b.Name && a.Enabled == b.Enabled
}
