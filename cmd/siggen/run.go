package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/timzifer/siggen/config"
	"github.com/timzifer/siggen/processor"
)

type runOptions struct {
	samples    uint64
	duration   time.Duration
	frames     uint64
	sampleRate string
	npyDir     string
	summary    bool
	logLevel   string
	metrics    string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an acquisition until a limit is reached or the process is interrupted",
		Long: `Run an acquisition. Flags override the matching configuration keys.
Without a configuration file the built-in defaults are used.

SIGHUP reloads the configuration file when no overrides are given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAcquisition(cmd, root, opts)
		},
	}
	flags := cmd.Flags()
	flags.Uint64Var(&opts.samples, "samples", 0, "stop after this many samples")
	flags.DurationVar(&opts.duration, "time", 0, "stop after this much acquisition time")
	flags.Uint64Var(&opts.frames, "frames", 0, "stop after this many frames")
	flags.StringVar(&opts.sampleRate, "sample-rate", "", "sample rate, e.g. 200k or 1 MHz")
	flags.StringVar(&opts.npyDir, "npy-dir", "", "write the captured samples as .npy arrays into this directory")
	flags.BoolVar(&opts.summary, "summary", false, "log per-channel statistics when the acquisition ends")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.metrics, "metrics", "", "serve Prometheus metrics on this address")
	return cmd
}

func runAcquisition(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	cfg, fromFile, err := loadConfig(cmd, root.configPath)
	if err != nil {
		return err
	}
	overridden, err := applyRunFlags(cmd, cfg, opts)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var reloadFn processor.ReloadFunc
	procOpts := []processor.Option{processor.WithConfig(cfg)}
	if fromFile && !overridden {
		procOpts = append(procOpts, processor.WithConfigPath(root.configPath, func(fn processor.ReloadFunc) {
			reloadFn = fn
		}))
	}
	proc, err := processor.New(ctx, procOpts...)
	if err != nil {
		return err
	}
	defer proc.Close()

	if reloadFn != nil {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-hup:
					if err := reloadFn(ctx); err != nil {
						log.Error().Err(err).Msg("reload failed")
					}
				}
			}
		}()
	}

	err = proc.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads path. A missing file at the default location falls back
// to the built-in defaults.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), false, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config, opts *runOptions) (bool, error) {
	flags := cmd.Flags()
	changed := false
	if flags.Changed("samples") {
		cfg.Limits.Samples = opts.samples
		changed = true
	}
	if flags.Changed("time") {
		cfg.Limits.Time = config.Duration{Duration: opts.duration}
		changed = true
	}
	if flags.Changed("frames") {
		cfg.Limits.Frames = opts.frames
		changed = true
	}
	if flags.Changed("sample-rate") {
		hz, err := config.ParseSampleRate(opts.sampleRate)
		if err != nil {
			return false, fmt.Errorf("--sample-rate: %w", err)
		}
		cfg.SampleRate = config.SampleRate(hz)
		changed = true
	}
	if flags.Changed("npy-dir") {
		cfg.Capture.NPYDir = opts.npyDir
		changed = true
	}
	if flags.Changed("summary") {
		cfg.Capture.Summary = opts.summary
		changed = true
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
		changed = true
	}
	if flags.Changed("metrics") {
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Listen = opts.metrics
		changed = true
	}
	return changed, nil
}
