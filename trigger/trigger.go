// Package trigger drives a Ticker from a periodic timer.
//
// The generator itself never sleeps or spawns goroutines; whoever owns the
// acquisition calls Tick at its own cadence. Runner is that caller for
// processes that just want a fixed period with pause and single-step
// control.
package trigger

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Result tells the trigger whether to keep invoking the ticker.
type Result int

const (
	// Continue keeps the ticker registered.
	Continue Result = iota
	// Stop deregisters the ticker. Further ticks are not delivered.
	Stop
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Ticker is invoked once per trigger period with the current monotonic time.
type Ticker interface {
	Tick(now time.Time) Result
}

// TickerFunc adapts a function to the Ticker interface.
type TickerFunc func(now time.Time) Result

// Tick calls f(now).
func (f TickerFunc) Tick(now time.Time) Result { return f(now) }

// Mode selects how the Runner paces ticks.
type Mode string

const (
	// ModeRun ticks once per interval.
	ModeRun Mode = "run"
	// ModePause only ticks on Step.
	ModePause Mode = "pause"
)

// Status reports the runner configuration.
type Status struct {
	Mode        Mode          `json:"mode"`
	Interval    time.Duration `json:"interval"`
	IntervalMS  int64         `json:"interval_ms"`
	IntervalStr string        `json:"interval_text"`
	Ticks       uint64        `json:"ticks"`
}

// ErrUnknownMode is returned by Run when the mode was set to an unknown value.
var ErrUnknownMode = errors.New("unknown trigger mode")

// Runner invokes a Ticker periodically. All methods are safe for concurrent
// use; Run itself must only be called from one goroutine at a time.
type Runner struct {
	mu       sync.RWMutex
	mode     Mode
	interval time.Duration
	ticks    uint64
	now      func() time.Time
	notify   chan struct{}
	step     chan struct{}
}

// Option customises a Runner.
type Option func(*Runner)

// WithClock replaces time.Now as the source of tick timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithMode sets the initial mode.
func WithMode(mode Mode) Option {
	return func(r *Runner) { r.mode = mode }
}

// NewRunner creates a runner ticking every interval. Non-positive intervals
// fall back to 100ms.
func NewRunner(interval time.Duration, opts ...Option) *Runner {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	r := &Runner{
		mode:     ModeRun,
		interval: interval,
		now:      time.Now,
		notify:   make(chan struct{}, 1),
		step:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run invokes t until it returns Stop or ctx is cancelled. A Stop result
// returns nil; cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context, t Ticker) error {
	for {
		now, err := r.wait(ctx)
		if err != nil {
			return err
		}
		r.mu.Lock()
		r.ticks++
		r.mu.Unlock()
		if t.Tick(now) == Stop {
			return nil
		}
	}
}

func (r *Runner) wait(ctx context.Context) (time.Time, error) {
	for {
		r.mu.RLock()
		mode := r.mode
		interval := r.interval
		r.mu.RUnlock()

		switch mode {
		case ModeRun:
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return time.Time{}, ctx.Err()
			case <-timer.C:
				return r.now(), nil
			case <-r.notify:
				timer.Stop()
				continue
			}
		case ModePause:
			select {
			case <-ctx.Done():
				return time.Time{}, ctx.Err()
			case <-r.step:
				return r.now(), nil
			case <-r.notify:
				continue
			}
		default:
			return time.Time{}, ErrUnknownMode
		}
	}
}

// SetMode switches between run and pause.
func (r *Runner) SetMode(mode Mode) {
	r.mu.Lock()
	if r.mode == mode {
		r.mu.Unlock()
		return
	}
	r.mode = mode
	r.mu.Unlock()
	r.signal()
}

// Step pauses the runner and releases exactly one tick.
func (r *Runner) Step() {
	r.mu.Lock()
	changed := r.mode != ModePause
	r.mode = ModePause
	r.mu.Unlock()
	if changed {
		r.signal()
	}
	select {
	case r.step <- struct{}{}:
	default:
	}
}

// SetInterval changes the tick period. The pending wait restarts.
func (r *Runner) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	r.mu.Lock()
	if r.interval == d {
		r.mu.Unlock()
		return
	}
	r.interval = d
	r.mu.Unlock()
	r.signal()
}

// Status returns the current mode, interval and tick count.
func (r *Runner) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Status{
		Mode:        r.mode,
		Interval:    r.interval,
		IntervalMS:  int64(r.interval / time.Millisecond),
		IntervalStr: r.interval.String(),
		Ticks:       r.ticks,
	}
}

func (r *Runner) signal() {
	select {
	case r.notify <- struct{}{}:
	default:
	}
}
