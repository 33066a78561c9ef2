package processor

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/config"
	"github.com/timzifer/siggen/telemetry"
)

// WithLogger provides a custom logger instance for the processor.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		cfg.logger = logger
		cfg.customLogger = true
		return nil
	}
}

// WithConfigPath configures the processor to load configuration data from
// the provided path. register, if set, receives the processor's Reload.
func WithConfigPath(path string, register func(ReloadFunc)) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		cfg.configPath = strings.TrimSpace(path)
		cfg.registerReload = register
		return nil
	}
}

// WithConfig supplies an already loaded configuration instance.
func WithConfig(cfgData *config.Config) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		cfg.config = cfgData
		return nil
	}
}

// WithTelemetry injects a collector instance overriding the default configuration-based behaviour.
func WithTelemetry(collector telemetry.Collector) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		if collector == nil {
			collector = telemetry.Noop()
		}
		cfg.telemetry = collector
		cfg.telemetryProvided = true
		return nil
	}
}

// WithSink adds a packet consumer. Sinks implementing io.Closer are closed
// when Run returns.
func WithSink(sink acquisition.Sink) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		if sink == nil {
			return errors.New("sink must not be nil")
		}
		cfg.sinks = append(cfg.sinks, sink)
		return nil
	}
}

// WithClock replaces time.Now for the acquisition start and tick times.
func WithClock(now func() time.Time) Option {
	return func(cfg *settings) error {
		if cfg == nil {
			return nil
		}
		if now == nil {
			return errors.New("clock must not be nil")
		}
		cfg.now = now
		return nil
	}
}
