// Package acquisition turns the pattern generators into a paced stream of
// packets. A Scheduler is started once, ticked by an external trigger and
// stops on its own when a limit is reached.
package acquisition

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/timzifer/siggen/analog"
	"github.com/timzifer/siggen/logic"
	"github.com/timzifer/siggen/patterns"
	"github.com/timzifer/siggen/telemetry"
	"github.com/timzifer/siggen/trigger"
)

// State is the scheduler lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the scheduler counters.
type Status struct {
	State       State
	RunID       ulid.ULID
	SentSamples uint64
	SpentUS     uint64
	Frames      uint64
	Err         error
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for lifecycle and error events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// WithTelemetry sets the metrics collector.
func WithTelemetry(c telemetry.Collector) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.telemetry = c
		}
	}
}

// Scheduler produces logic and analog packets for the wall-clock time that
// passed since the previous tick. All methods are safe for concurrent use.
type Scheduler struct {
	mu        sync.Mutex
	settings  Settings
	sink      Sink
	logger    zerolog.Logger
	runLog    zerolog.Logger
	telemetry telemetry.Collector

	state     State
	runID     ulid.ULID
	clock     RunClock
	frames    uint64
	frameOpen bool
	err       error

	logicGen     *logic.Generator
	mask         logic.ChannelMask
	logicEnabled int

	channels      []*analog.Channel
	analogEnabled []bool
	active        []*analog.Channel

	header     Header
	logicPkt   Logic
	analogPkt  Analog
	frameBegin FrameBegin
	frameEnd   FrameEnd
	end        End
}

var _ trigger.Ticker = (*Scheduler)(nil)

// NewScheduler prepares an idle scheduler. Structural problems such as an
// impossible channel count are reported here; whether the settings can run
// is checked by Start.
func NewScheduler(settings Settings, sink Sink, opts ...Option) (*Scheduler, error) {
	if sink == nil {
		sink = Discard
	}
	settings.Analog = slices.Clone(settings.Analog)
	settings.Logic.Enabled = slices.Clone(settings.Logic.Enabled)
	s := &Scheduler{
		settings:  settings,
		sink:      sink,
		logger:    zerolog.Nop(),
		telemetry: telemetry.Noop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.runLog = s.logger

	if n := settings.Logic.Channels; n > 0 {
		gen, err := logic.NewGenerator(n, settings.Logic.Pattern, settings.Logic.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		s.logicGen = gen
		if settings.Logic.Enabled == nil {
			s.mask = logic.PrefixMaskForCount(gen.UnitSize(), n)
		} else {
			s.mask = logic.NewChannelMask(gen.UnitSize(), settings.Logic.Enabled)
		}
		s.logicEnabled = settings.Logic.EnabledCount()
	}

	decimation := uint64(0)
	if settings.Average {
		decimation = settings.AverageSamples
	}
	for i, cs := range settings.Analog {
		s.channels = append(s.channels, analog.NewChannel(i, cs.Name, cs.Spec, decimation))
		s.analogEnabled = append(s.analogEnabled, cs.Enabled)
	}
	s.active = make([]*analog.Channel, 0, len(s.channels))
	return s, nil
}

// Settings returns the settings the scheduler was built with, including
// changes made through the setters.
func (s *Scheduler) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// State returns the lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns the counters of the current or last acquisition.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		State:       s.state,
		RunID:       s.runID,
		SentSamples: s.clock.SentSamples,
		SpentUS:     s.clock.SpentUS,
		Frames:      s.frames,
		Err:         s.err,
	}
}

// Start begins an acquisition at now. Invalid settings, or enabled channels
// of which none can produce data, move the scheduler to StateStopped and
// return an error wrapping ErrConfig.
func (s *Scheduler) Start(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		return fmt.Errorf("start: %w", ErrRunning)
	}
	if err := s.settings.Validate(); err != nil {
		s.state = StateStopped
		s.err = err
		s.telemetry.SetRunState(int(StateStopped))
		s.logger.Error().Err(err).Msg("cannot start acquisition")
		return err
	}

	names := make([]string, 0, len(s.channels))
	for i, ch := range s.channels {
		ch.Rewind()
		if err := ch.Configure(s.settings.SampleRate); err != nil {
			s.logger.Warn().Err(err).Str("channel", ch.Name()).Msg("analog channel has no data")
		}
		if s.analogEnabled[i] {
			names = append(names, ch.Name())
		}
	}
	if !s.producing() {
		err := fmt.Errorf("%w: no enabled channel produces data", ErrConfig)
		s.state = StateStopped
		s.err = err
		s.telemetry.SetRunState(int(StateStopped))
		s.logger.Error().Err(err).Msg("cannot start acquisition")
		return err
	}

	s.runID = ulid.Make()
	s.runLog = s.logger.With().Str("run", s.runID.String()).Logger()
	s.clock = RunClock{
		Start:        now,
		SampleRate:   s.settings.SampleRate,
		LimitSamples: s.settings.LimitSamples,
		LimitMsec:    s.settings.LimitMsec,
	}
	s.frames = 0
	s.frameOpen = false
	s.err = nil

	unitSize := 0
	if s.logicGen != nil {
		s.logicGen.Reset()
		unitSize = s.logicGen.UnitSize()
	}

	s.state = StateRunning
	s.telemetry.SetRunState(int(StateRunning))
	s.header = Header{
		RunID:          s.runID,
		Start:          now,
		SampleRate:     s.settings.SampleRate,
		UnitSize:       unitSize,
		LogicChannels:  s.logicEnabled,
		AnalogChannels: names,
	}
	s.send(&s.header)
	if s.settings.FrameSize > 0 {
		s.send(&s.frameBegin)
		s.frameOpen = true
	}
	s.runLog.Debug().
		Uint64("sample_rate", s.settings.SampleRate).
		Int("logic_channels", s.logicEnabled).
		Int("analog_channels", len(names)).
		Msg("acquisition started")
	return nil
}

// Stop ends a running acquisition: the open frame is closed and End is
// emitted. Stopping an idle or stopped scheduler does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finish(nil)
}

// Tick produces the samples owed for the time elapsed up to now. It returns
// trigger.Stop once the acquisition has ended. A run left without any
// producing channel by a failed live change ends with ErrConfig.
func (s *Scheduler) Tick(now time.Time) trigger.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return trigger.Stop
	}
	s.telemetry.IncTicks()

	if !s.producing() {
		err := fmt.Errorf("%w: no enabled channel produces data", ErrConfig)
		s.runLog.Error().Err(err).Msg("aborting acquisition")
		s.finish(err)
		return trigger.Stop
	}

	todo, todoUS := s.clock.Budget(now, s.settings.FrameSize)
	if err := s.produce(todo); err != nil {
		s.runLog.Error().Err(err).Uint64("samples_todo", todo).Msg("aborting acquisition")
		s.telemetry.IncInvariantViolation()
		s.finish(err)
		return trigger.Stop
	}
	s.clock.Commit(todo, todoUS)

	if s.clock.LimitReached() {
		s.runLog.Debug().Uint64("sent_samples", s.clock.SentSamples).Msg("limit reached")
		s.flushAverages()
		s.finish(nil)
		return trigger.Stop
	}
	if s.settings.FrameSize > 0 {
		s.send(&s.frameEnd)
		s.frameOpen = false
		s.frames++
		if s.settings.LimitFrames > 0 && s.frames >= s.settings.LimitFrames {
			s.runLog.Debug().Uint64("frames", s.frames).Msg("frame limit reached")
			s.flushAverages()
			s.finish(nil)
			return trigger.Stop
		}
		s.send(&s.frameBegin)
		s.frameOpen = true
	}
	return trigger.Continue
}

// produce emits todo samples for every active channel kind. Logic and analog
// chunks are interleaved until both kinds have covered todo.
func (s *Scheduler) produce(todo uint64) error {
	var logicDone, analogDone uint64
	if s.logicGen == nil || s.logicEnabled == 0 {
		logicDone = todo
	}
	active := s.activeAnalog()
	if len(active) == 0 {
		analogDone = todo
	}

	for logicDone < todo || analogDone < todo {
		if logicDone < todo {
			n, err := s.sendLogic(todo - logicDone)
			if err != nil {
				s.runLog.Warn().Err(err).Str("pattern", s.logicGen.Pattern().String()).Msg("no logic data this tick")
				n = todo - logicDone
			}
			logicDone += n
		}
		if analogDone < todo {
			n, err := s.sendAnalog(active, todo-analogDone)
			if err != nil {
				return err
			}
			analogDone += n
		}
	}
	if logicDone != analogDone {
		return fmt.Errorf("%w: logic %d, analog %d", ErrSampleCountMismatch, logicDone, analogDone)
	}
	return nil
}

func (s *Scheduler) sendLogic(remaining uint64) (uint64, error) {
	rows := uint64(s.logicGen.MaxRows())
	if remaining < rows {
		rows = remaining
	}
	unit := s.logicGen.UnitSize()
	data, err := s.logicGen.Fill(int(rows) * unit)
	if err != nil {
		return 0, err
	}
	s.mask.Apply(data)
	s.logicPkt = Logic{UnitSize: unit, Data: data}
	s.send(&s.logicPkt)
	s.telemetry.AddSamples("logic", rows)
	return rows, nil
}

// sendAnalog emits one chunk for every active channel. The chunk never
// crosses a ring wrap or an averaging window boundary of any channel, so all
// channels advance by the same count.
func (s *Scheduler) sendAnalog(active []*analog.Channel, remaining uint64) (uint64, error) {
	chunk := remaining
	for _, ch := range active {
		if avail := uint64(ch.Available()); avail < chunk {
			chunk = avail
		}
		if s.settings.Average {
			if r := ch.Averager().Remaining(); r > 0 && uint64(r) < chunk {
				chunk = uint64(r)
			}
		}
	}
	if chunk == 0 {
		return 0, fmt.Errorf("%w: analog chunk is empty", ErrSampleCountMismatch)
	}

	for _, ch := range active {
		samples := ch.Read(int(chunk))
		if uint64(len(samples)) != chunk {
			return 0, fmt.Errorf("%w: channel %s returned %d of %d samples", ErrSampleCountMismatch, ch.Name(), len(samples), chunk)
		}
		if !s.settings.Average {
			s.emitAnalog(ch, samples, false)
			continue
		}
		res := ch.Averager().Fold(samples)
		if uint64(res.Consumed) != chunk {
			return 0, fmt.Errorf("%w: channel %s averaged %d of %d samples", ErrSampleCountMismatch, ch.Name(), res.Consumed, chunk)
		}
		if res.Emit {
			s.emitAnalog(ch, ch.Single(res.Value), true)
		}
	}
	s.telemetry.AddSamples("analog", chunk)
	return chunk, nil
}

func (s *Scheduler) emitAnalog(ch *analog.Channel, samples []float32, averaged bool) {
	s.analogPkt = Analog{
		Channel:   ch.ID(),
		Name:      ch.Name(),
		Samples:   samples,
		Averaged:  averaged,
		Amplitude: ch.Spec().Amplitude,
	}
	s.send(&s.analogPkt)
}

// flushAverages emits the whole-run average of every active channel.
func (s *Scheduler) flushAverages() {
	if !s.settings.Average || s.settings.AverageSamples != 0 {
		return
	}
	for _, ch := range s.activeAnalog() {
		v, _ := ch.Averager().Flush()
		s.emitAnalog(ch, ch.Single(v), true)
	}
}

// producing reports whether at least one enabled channel can emit samples.
func (s *Scheduler) producing() bool {
	if s.logicGen != nil && s.logicEnabled > 0 {
		return true
	}
	return len(s.activeAnalog()) > 0
}

func (s *Scheduler) activeAnalog() []*analog.Channel {
	s.active = s.active[:0]
	for i, ch := range s.channels {
		if s.analogEnabled[i] && ch.Len() > 0 {
			s.active = append(s.active, ch)
		}
	}
	return s.active
}

func (s *Scheduler) finish(err error) {
	if s.state != StateRunning {
		return
	}
	if s.frameOpen {
		s.send(&s.frameEnd)
		s.frameOpen = false
		s.frames++
	}
	s.end = End{
		RunID:       s.runID,
		SentSamples: s.clock.SentSamples,
		Frames:      s.frames,
		Err:         err,
	}
	s.send(&s.end)
	s.state = StateStopped
	s.err = err
	s.telemetry.SetRunState(int(StateStopped))
	s.runLog.Debug().
		Uint64("sent_samples", s.clock.SentSamples).
		Uint64("spent_us", s.clock.SpentUS).
		Uint64("frames", s.frames).
		Msg("acquisition stopped")
}

func (s *Scheduler) send(p Packet) {
	s.telemetry.IncPackets(p.Kind().String())
	if err := s.sink.Send(p); err != nil {
		s.telemetry.IncSinkError()
		s.runLog.Error().Err(err).Str("packet", p.Kind().String()).Msg("sink rejected packet")
	}
}

// SetLogicPattern switches the logic pattern, also while running. The step
// cursor is kept.
func (s *Scheduler) SetLogicPattern(p patterns.Logic) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logicGen == nil {
		return fmt.Errorf("%w: no logic channels", ErrConfig)
	}
	if !p.Valid() {
		s.runLog.Warn().Str("pattern", p.String()).Msg("unknown logic pattern selected")
	}
	s.logicGen.SetPattern(p)
	s.settings.Logic.Pattern = p
	return nil
}

// SetAnalogPattern changes the waveform of one analog channel and recomputes
// only that channel. A channel whose waveform cannot be synthesized emits
// nothing until it is fixed.
func (s *Scheduler) SetAnalogPattern(index int, p patterns.Analog) error {
	return s.updateAnalog(index, func(spec *analog.Spec) { spec.Pattern = p })
}

// SetAnalogAmplitude changes the amplitude of one analog channel.
func (s *Scheduler) SetAnalogAmplitude(index int, amplitude float64) error {
	return s.updateAnalog(index, func(spec *analog.Spec) { spec.Amplitude = amplitude })
}

// SetAnalogExpression installs a compiled expression on one analog channel
// and selects the expression waveform.
func (s *Scheduler) SetAnalogExpression(index int, e *analog.Expression) error {
	return s.updateAnalog(index, func(spec *analog.Spec) {
		spec.Pattern = patterns.AnalogExpression
		spec.Expression = e
	})
}

func (s *Scheduler) updateAnalog(index int, update func(*analog.Spec)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.channels) {
		return fmt.Errorf("%w: analog channel %d does not exist", ErrConfig, index)
	}
	ch := s.channels[index]
	spec := ch.Spec()
	update(&spec)
	s.settings.Analog[index].Spec = spec
	if err := ch.SetSpec(spec); err != nil {
		s.runLog.Warn().Err(err).Str("channel", ch.Name()).Msg("analog channel has no data")
		return err
	}
	return nil
}

// SetSampleRate changes the sample rate of an idle or stopped scheduler.
func (s *Scheduler) SetSampleRate(rate uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		return fmt.Errorf("set sample rate: %w", ErrRunning)
	}
	s.settings.SampleRate = rate
	return nil
}
