package processor

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/timzifer/siggen/acquisition"
	"github.com/timzifer/siggen/capture"
	"github.com/timzifer/siggen/config"
	"github.com/timzifer/siggen/patterns"
)

// stepClock advances by step on every reading.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Unix(1_000, 0), step: 10 * time.Millisecond}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Cycle = config.Duration{Duration: time.Millisecond}
	cfg.SampleRate = 1000
	cfg.Limits.Samples = 50
	cfg.Logic.Pattern = "incremental"
	cfg.Analog.Channels = 2
	return cfg
}

func newTestProcessor(t *testing.T, cfg *config.Config, opts ...Option) *Processor {
	t.Helper()
	base := []Option{
		WithConfig(cfg),
		WithLogger(zerolog.Nop()),
		WithClock(newStepClock().Now),
	}
	proc, err := New(context.Background(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(proc.Close)
	return proc
}

func TestNewRequiresConfiguration(t *testing.T) {
	_, err := New(context.Background())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(ctx, WithConfig(testConfig()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.SampleRate = 0
	_, err := New(context.Background(), WithConfig(cfg), WithLogger(zerolog.Nop()))
	require.Error(t, err)

	cfg = testConfig()
	cfg.Logic.Pattern = "zigzag"
	_, err = New(context.Background(), WithConfig(cfg), WithLogger(zerolog.Nop()))
	require.Error(t, err)
}

func TestOptionsRejectNilValues(t *testing.T) {
	_, err := New(context.Background(), WithConfig(testConfig()), WithSink(nil))
	require.Error(t, err)
	_, err = New(context.Background(), WithConfig(testConfig()), WithClock(nil))
	require.Error(t, err)
}

func TestRunStopsAtSampleLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Capture.Summary = true
	rec := capture.NewRecorder()
	proc := newTestProcessor(t, cfg, WithSink(rec))

	require.NoError(t, proc.Run(context.Background()))

	kinds := rec.Kinds()
	require.Equal(t, acquisition.KindHeader, kinds[0])
	require.Equal(t, acquisition.KindEnd, kinds[len(kinds)-1])
	require.Len(t, rec.Logic(), 50)
	require.Len(t, rec.Analog(0), 50)
	require.Len(t, rec.Analog(1), 50)
	for i, b := range rec.Logic() {
		require.Equal(t, byte(i), b)
	}

	status := proc.Scheduler().Status()
	require.Equal(t, acquisition.StateStopped, status.State)
	require.Equal(t, uint64(50), status.SentSamples)

	report := proc.Summary().Report()
	require.Equal(t, uint64(50), report.Sent)
	require.Equal(t, uint64(50), report.Logic.Rows)
	require.Len(t, report.Analog, 2)
	require.Equal(t, 1, report.Packets[acquisition.KindEnd])
}

func TestRunCancelStopsCleanly(t *testing.T) {
	cfg := testConfig()
	cfg.Limits.Samples = 0
	rec := capture.NewRecorder()
	proc := newTestProcessor(t, cfg, WithSink(rec))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- proc.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rec.Logic()) >= 30 }, 5*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	kinds := rec.Kinds()
	require.Equal(t, acquisition.KindEnd, kinds[len(kinds)-1])
	require.Equal(t, len(rec.Logic()), len(rec.Analog(0)))
}

func TestRunTwiceStartsNewAcquisition(t *testing.T) {
	proc := newTestProcessor(t, testConfig())

	require.NoError(t, proc.Run(context.Background()))
	first := proc.Scheduler().Status().RunID

	require.NoError(t, proc.Run(context.Background()))
	second := proc.Scheduler().Status().RunID
	require.NotEqual(t, first, second)
	require.Equal(t, uint64(50), proc.Scheduler().Status().SentSamples)
}

func TestRunWritesNPYArrays(t *testing.T) {
	cfg := testConfig()
	cfg.Capture.NPYDir = filepath.Join(t.TempDir(), "out")
	proc := newTestProcessor(t, cfg)

	require.NoError(t, proc.Run(context.Background()))
	for _, name := range []string{"logic.npy", "analog_A0.npy", "analog_A1.npy"} {
		info, err := os.Stat(filepath.Join(cfg.Capture.NPYDir, name))
		require.NoError(t, err, name)
		require.NotZero(t, info.Size(), name)
	}
}

func TestRunReportsStartFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Logic.Disabled = true
	cfg.Analog.Channels = 0
	rec := capture.NewRecorder()
	proc := newTestProcessor(t, cfg, WithSink(rec))

	err := proc.Run(context.Background())
	require.ErrorIs(t, err, acquisition.ErrConfig)
	require.Empty(t, rec.Records())
}

const reloadBase = `cycle: 1ms
sample_rate: 1000
logic:
  channels: 8
  pattern: incremental
analog:
  channels: 1
  amplitude: 1
`

const reloadChanged = `cycle: 2ms
sample_rate: 2000
logic:
  channels: 8
  pattern: walking-one
analog:
  channels: 1
  amplitude: 1
  overrides:
    - index: 0
      pattern: sine
      amplitude: 2
`

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReloadIdleRebuildsPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siggen.yaml")
	writeConfig(t, path, reloadBase)

	var reloadFn ReloadFunc
	proc, err := New(context.Background(),
		WithConfigPath(path, func(fn ReloadFunc) { reloadFn = fn }),
		WithLogger(zerolog.Nop()),
	)
	require.NoError(t, err)
	t.Cleanup(proc.Close)
	require.NotNil(t, reloadFn)
	require.Equal(t, uint64(1000), proc.Scheduler().Settings().SampleRate)

	writeConfig(t, path, reloadChanged)
	require.NoError(t, reloadFn(context.Background()))
	require.Equal(t, uint64(2000), proc.Config().SampleRate.Hz())
	settings := proc.Scheduler().Settings()
	require.Equal(t, uint64(2000), settings.SampleRate)
	require.Equal(t, patterns.LogicWalkingOne, settings.Logic.Pattern)
	require.Equal(t, 2*time.Millisecond, proc.Runner().Status().Interval)
}

func TestReloadWhileRunningAppliesPatternChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siggen.yaml")
	writeConfig(t, path, reloadBase)

	proc, err := New(context.Background(),
		WithConfigPath(path, nil),
		WithLogger(zerolog.Nop()),
		WithClock(newStepClock().Now),
	)
	require.NoError(t, err)
	t.Cleanup(proc.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- proc.Run(ctx) }()
	require.Eventually(t, func() bool {
		return proc.Scheduler().State() == acquisition.StateRunning
	}, 5*time.Second, time.Millisecond)

	writeConfig(t, path, reloadChanged)
	require.NoError(t, proc.Reload(ctx))

	settings := proc.Scheduler().Settings()
	require.Equal(t, patterns.LogicWalkingOne, settings.Logic.Pattern)
	require.Equal(t, patterns.AnalogSine, settings.Analog[0].Spec.Pattern)
	require.Equal(t, 2.0, settings.Analog[0].Spec.Amplitude)
	require.Equal(t, uint64(1000), settings.SampleRate, "sample rate waits for the next acquisition")
	require.Equal(t, 2*time.Millisecond, proc.Runner().Status().Interval)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestReloadFallsBackWhenRunEndsFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siggen.yaml")
	writeConfig(t, path, reloadBase)
	proc, err := New(context.Background(), WithConfigPath(path, nil), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	t.Cleanup(proc.Close)

	// A run that left its loop but has not cleared its state yet.
	runDone := make(chan struct{})
	proc.mu.Lock()
	proc.running = true
	proc.runDone = runDone
	proc.mu.Unlock()

	writeConfig(t, path, reloadChanged)
	result := make(chan error, 1)
	go func() { result <- proc.Reload(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	proc.mu.Lock()
	proc.running = false
	close(runDone)
	proc.mu.Unlock()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Reload blocked after the run ended")
	}
	require.Equal(t, uint64(2000), proc.Scheduler().Settings().SampleRate)
}

func TestReloadWithoutPathFails(t *testing.T) {
	proc := newTestProcessor(t, testConfig())
	require.Error(t, proc.Reload(context.Background()))
}

func TestRestartFields(t *testing.T) {
	cur := acquisition.DefaultSettings()
	next := acquisition.DefaultSettings()
	require.Empty(t, restartFields(cur, next))

	next.SampleRate = 1
	next.Logic.Enabled = []bool{true}
	next.Analog = next.Analog[:2]
	require.Equal(t, []string{"sample_rate", "logic.enabled", "analog.channels"}, restartFields(cur, next))
}
