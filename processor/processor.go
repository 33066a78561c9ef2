package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/capture"
	"github.com/timzifer/siggen/config"
	"github.com/timzifer/siggen/internal/logging"
	"github.com/timzifer/siggen/internal/reload"
	"github.com/timzifer/siggen/telemetry"
	"github.com/timzifer/siggen/trigger"
)

// ReloadFunc represents a function that reloads the processor configuration.
type ReloadFunc func(ctx context.Context) error

// Option configures the processor during construction.
type Option func(*settings) error

type settings struct {
	config            *config.Config
	configPath        string
	registerReload    func(ReloadFunc)
	logger            zerolog.Logger
	customLogger      bool
	telemetry         telemetry.Collector
	telemetryProvided bool
	sinks             []acquisition.Sink
	now               func() time.Time
}

// Processor wires configuration, logging, telemetry and packet sinks around
// an acquisition scheduler and drives it from a trigger.Runner.
type Processor struct {
	mu sync.Mutex

	config     *config.Config
	configPath string

	collector    telemetry.Collector
	customLogger bool
	baseLogger   zerolog.Logger
	extraSinks   []acquisition.Sink
	now          func() time.Time

	watcher  *reload.Watcher
	reloadCh chan reloadRequest

	current *runtimeState
	running bool
	runDone chan struct{}
}

type runtimeState struct {
	cfg       *config.Config
	logger    zerolog.Logger
	cleanup   func()
	scheduler *acquisition.Scheduler
	runner    *trigger.Runner
	sinks     capture.Fanout
	summary   *capture.Summary
	finished  bool

	shutdownOnce sync.Once
	shutdownErr  error
}

type reloadRequest struct {
	done  chan error
	files []string
}

// New constructs a processor with the supplied options.
func New(ctx context.Context, opts ...Option) (*Processor, error) {
	if ctx != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cfg := settings{
		logger:    zerolog.Nop(),
		telemetry: telemetry.Noop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.config == nil {
		if cfg.configPath == "" {
			return nil, errors.New("configuration path required")
		}
		loaded, err := config.Load(cfg.configPath)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		cfg.config = loaded
	} else if err := config.Validate(cfg.config); err != nil {
		return nil, err
	}

	if !cfg.telemetryProvided {
		collector, err := newTelemetryCollector(cfg.config.Telemetry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
			cfg.telemetry = telemetry.Noop()
		} else {
			cfg.telemetry = collector
		}
	}

	proc := &Processor{
		config:       cfg.config,
		configPath:   cfg.configPath,
		collector:    cfg.telemetry,
		customLogger: cfg.customLogger,
		baseLogger:   cfg.logger,
		extraSinks:   cfg.sinks,
		now:          cfg.now,
	}

	runtime, err := proc.buildRuntime(cfg.config)
	if err != nil {
		return nil, err
	}
	proc.current = runtime

	if cfg.configPath != "" {
		proc.reloadCh = make(chan reloadRequest)
		proc.watcher = reload.NewWatcher(cfg.configPath)
	}
	if cfg.registerReload != nil {
		cfg.registerReload(proc.Reload)
	}
	return proc, nil
}

// Run starts an acquisition and ticks it until a limit ends it or ctx is
// cancelled. Cancellation stops the acquisition cleanly and returns
// ctx.Err(). An acquisition aborted by the scheduler returns the abort
// reason. Run may be called again after it returned; every call starts a
// new acquisition with fresh sinks.
func (p *Processor) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.current == nil {
		p.mu.Unlock()
		return errors.New("processor not initialized")
	}
	if p.running {
		p.mu.Unlock()
		return errors.New("processor already running")
	}
	if p.current.finished {
		runtime, err := p.buildRuntime(p.config)
		if err != nil {
			p.mu.Unlock()
			return err
		}
		p.current = runtime
	}
	p.running = true
	p.runDone = make(chan struct{})
	runDone := p.runDone
	current := p.current
	telemetryCfg := p.config.Telemetry
	watcher := p.watcher
	reloadCh := p.reloadCh
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		current.finished = true
		close(runDone)
		p.mu.Unlock()
	}()

	if telemetryCfg.Enabled && telemetryCfg.Listen != "" {
		stop, err := serveMetrics(telemetryCfg.Listen, current.logger)
		if err != nil {
			return errors.Join(fmt.Errorf("start metrics server: %w", err), current.shutdown())
		}
		defer stop()
	}

	if err := current.scheduler.Start(p.now()); err != nil {
		return errors.Join(err, current.shutdown())
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	errCh := make(chan error, 1)
	go func() {
		errCh <- current.runner.Run(runCtx, current.scheduler)
	}()

	var ticker *time.Ticker
	if watcher != nil {
		ticker = time.NewTicker(time.Second)
		defer ticker.Stop()
	}

	var runErr error
loop:
	for {
		select {
		case runErr = <-errCh:
			break loop
		case req := <-reloadCh:
			req.done <- p.applyReload(current, req.files)
		case <-tickChannel(ticker):
			changes, err := watcher.Check()
			if err != nil {
				current.logger.Error().Err(err).Msg("failed to check configuration changes")
				continue
			}
			if len(changes) == 0 {
				continue
			}
			if err := p.applyReload(current, changes); err != nil {
				current.logger.Error().Err(err).Msg("failed to reload configuration")
			}
		}
	}

	if runErr != nil {
		current.scheduler.Stop()
	}
	closeErr := current.shutdown()

	if status := current.scheduler.Status(); status.Err != nil {
		return status.Err
	}
	if runErr != nil {
		return runErr
	}
	return closeErr
}

// Reload loads the configuration from disk again. A running acquisition
// takes over pattern, amplitude, expression and cycle changes; anything
// else is applied by the next Run. An idle processor rebuilds its pipeline,
// which is also what happens when the run ends before taking the request.
func (p *Processor) Reload(ctx context.Context) error {
	p.mu.Lock()
	running := p.running
	reloadCh := p.reloadCh
	runDone := p.runDone
	p.mu.Unlock()

	if !running {
		cfg, err := p.loadConfig()
		if err != nil {
			return err
		}
		return p.swapRuntime(cfg)
	}

	if reloadCh == nil {
		return errors.New("reload not supported without configuration path")
	}

	req := reloadRequest{done: make(chan error, 1), files: []string{p.configPath}}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-runDone:
		return p.Reload(ctx)
	case reloadCh <- req:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-req.done:
		return err
	}
}

// Scheduler returns the scheduler of the current or most recent acquisition.
func (p *Processor) Scheduler() *acquisition.Scheduler {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	return p.current.scheduler
}

// Runner returns the trigger of the current or most recent acquisition. It
// can be used to pause and single-step a running acquisition.
func (p *Processor) Runner() *trigger.Runner {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	return p.current.runner
}

// Summary returns the statistics of the current or most recent acquisition,
// or nil when capture.summary is off.
func (p *Processor) Summary() *capture.Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	return p.current.summary
}

// Config returns the active configuration.
func (p *Processor) Config() *config.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// Close releases resources managed by the processor.
func (p *Processor) Close() {
	p.mu.Lock()
	current := p.current
	p.current = nil
	p.mu.Unlock()

	if current != nil {
		current.scheduler.Stop()
		_ = current.shutdown()
	}
}

func (p *Processor) loadConfig() (*config.Config, error) {
	if p.configPath == "" {
		return nil, errors.New("reload not supported without configuration path")
	}
	cfg, err := config.Load(p.configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

func (p *Processor) swapRuntime(cfg *config.Config) error {
	runtime, err := p.buildRuntime(cfg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	old := p.current
	p.current = runtime
	p.config = cfg
	p.watcher.Update(p.configPath)
	p.mu.Unlock()

	if old != nil && !old.finished {
		_ = old.shutdown()
	}
	return nil
}

func (p *Processor) buildRuntime(cfg *config.Config) (*runtimeState, error) {
	if cfg == nil {
		return nil, errors.New("config must not be nil")
	}
	acqSettings, err := acquisition.SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	runtime := &runtimeState{cfg: cfg, cleanup: func() {}}
	if p.customLogger {
		runtime.logger = p.baseLogger
	} else {
		logger, cleanup, err := logging.Setup(cfg.Logging)
		if err != nil {
			return nil, err
		}
		runtime.logger = logger
		runtime.cleanup = cleanup
	}
	if cfg.Name != "" {
		runtime.logger = runtime.logger.With().Str("generator", cfg.Name).Logger()
	}

	var owned capture.Fanout
	fail := func(err error) (*runtimeState, error) {
		_ = owned.Close()
		runtime.cleanup()
		return nil, err
	}
	if dir := cfg.Capture.NPYDir; dir != "" {
		writer, err := capture.NewNPYWriter(dir, runtime.logger)
		if err != nil {
			return fail(err)
		}
		owned = append(owned, writer)
	}
	if cfg.Capture.MQTT.Broker != "" {
		publisher, err := capture.NewMQTTPublisher(cfg.Capture.MQTT, runtime.logger)
		if err != nil {
			return fail(err)
		}
		owned = append(owned, publisher)
	}
	if cfg.Capture.Summary {
		runtime.summary = capture.NewSummary()
		owned = append(owned, runtime.summary)
	}
	runtime.sinks = append(slices.Clone(p.extraSinks), owned...)

	scheduler, err := acquisition.NewScheduler(acqSettings, runtime.sinks,
		acquisition.WithLogger(runtime.logger),
		acquisition.WithTelemetry(p.collector),
	)
	if err != nil {
		return fail(err)
	}
	runtime.scheduler = scheduler
	runtime.runner = trigger.NewRunner(cfg.CycleInterval(), trigger.WithClock(p.now))
	return runtime, nil
}

// applyReload hands a freshly loaded configuration to the running
// acquisition.
func (p *Processor) applyReload(current *runtimeState, files []string) error {
	cfg, err := p.loadConfig()
	if err != nil {
		return err
	}
	next, err := acquisition.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	if err := applyLiveChanges(current.scheduler, next, current.logger); err != nil {
		return err
	}
	current.runner.SetInterval(cfg.CycleInterval())

	p.mu.Lock()
	p.config = cfg
	p.watcher.Update(p.configPath)
	p.mu.Unlock()

	for _, file := range files {
		p.collector.IncHotReload(file)
	}
	current.logger.Info().Strs("files", files).Msg("configuration reloaded")
	return nil
}

// shutdown closes the sinks, logs the summary and releases the logger.
func (r *runtimeState) shutdown() error {
	r.shutdownOnce.Do(func() {
		r.shutdownErr = r.sinks.Close()
		if r.shutdownErr != nil {
			r.logger.Error().Err(r.shutdownErr).Msg("failed to close sinks")
		}
		if r.summary != nil {
			r.summary.Log(r.logger)
		}
		r.cleanup()
	})
	return r.shutdownErr
}

func tickChannel(t *time.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
