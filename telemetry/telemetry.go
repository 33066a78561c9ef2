package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector captures telemetry events emitted by the acquisition.
//
// Implementations are called inline from the scheduler tick and must be
// inexpensive.
type Collector interface {
	IncTicks()
	AddSamples(kind string, count uint64)
	IncPackets(kind string)
	IncInvariantViolation()
	IncSinkError()
	SetRunState(state int)
	IncHotReload(file string)
}

type noopCollector struct{}

// Noop returns a collector that discards all metrics.
func Noop() Collector {
	return noopCollector{}
}

func (noopCollector) IncTicks()                 {}
func (noopCollector) AddSamples(string, uint64) {}
func (noopCollector) IncPackets(string)         {}
func (noopCollector) IncInvariantViolation()    {}
func (noopCollector) IncSinkError()             {}
func (noopCollector) SetRunState(int)           {}
func (noopCollector) IncHotReload(string)       {}

// PrometheusCollector exposes acquisition counters via Prometheus.
type PrometheusCollector struct {
	ticks      prometheus.Counter
	samples    *prometheus.CounterVec
	packets    *prometheus.CounterVec
	violations prometheus.Counter
	sinkErrors prometheus.Counter
	runState   prometheus.Gauge
	hotReloads *prometheus.CounterVec
}

var (
	metricsLock sync.Mutex
	metrics     *PrometheusCollector
)

// NewPrometheusCollector registers the acquisition metrics with reg. Metrics
// that are already registered are reused, so repeated calls share counters.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	metricsLock.Lock()
	defer metricsLock.Unlock()
	if metrics != nil {
		return metrics, nil
	}

	ticks, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "siggen_ticks_total",
		Help: "Number of scheduler ticks handled.",
	}))
	if err != nil {
		return nil, err
	}
	samples, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siggen_samples_total",
		Help: "Number of samples emitted per channel kind.",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	packets, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siggen_packets_total",
		Help: "Number of packets delivered to the sink per packet kind.",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	violations, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "siggen_invariant_violations_total",
		Help: "Number of ticks aborted because channel kinds emitted different sample counts.",
	}))
	if err != nil {
		return nil, err
	}
	sinkErrors, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "siggen_sink_errors_total",
		Help: "Number of packets the sink rejected.",
	}))
	if err != nil {
		return nil, err
	}
	runState, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "siggen_run_state",
		Help: "Scheduler state: 0 idle, 1 running, 2 stopped.",
	}))
	if err != nil {
		return nil, err
	}

	hotReloads, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siggen_hot_reload_total",
		Help: "Number of configuration reloads applied to a running acquisition.",
	}, []string{"file"}))
	if err != nil {
		return nil, err
	}

	metrics = &PrometheusCollector{
		ticks:      ticks,
		samples:    samples,
		packets:    packets,
		violations: violations,
		sinkErrors: sinkErrors,
		runState:   runState,
		hotReloads: hotReloads,
	}
	return metrics, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// IncTicks counts one scheduler tick.
func (p *PrometheusCollector) IncTicks() {
	if p == nil || p.ticks == nil {
		return
	}
	p.ticks.Inc()
}

// AddSamples records emitted samples for a channel kind.
func (p *PrometheusCollector) AddSamples(kind string, count uint64) {
	if p == nil || p.samples == nil || count == 0 {
		return
	}
	p.samples.WithLabelValues(kind).Add(float64(count))
}

// IncPackets counts one delivered packet.
func (p *PrometheusCollector) IncPackets(kind string) {
	if p == nil || p.packets == nil {
		return
	}
	p.packets.WithLabelValues(kind).Inc()
}

// IncInvariantViolation counts an aborted tick.
func (p *PrometheusCollector) IncInvariantViolation() {
	if p == nil || p.violations == nil {
		return
	}
	p.violations.Inc()
}

// IncSinkError counts a packet rejected by the sink.
func (p *PrometheusCollector) IncSinkError() {
	if p == nil || p.sinkErrors == nil {
		return
	}
	p.sinkErrors.Inc()
}

// SetRunState publishes the scheduler state.
func (p *PrometheusCollector) SetRunState(state int) {
	if p == nil || p.runState == nil {
		return
	}
	p.runState.Set(float64(state))
}

// IncHotReload counts a configuration reload triggered by file.
func (p *PrometheusCollector) IncHotReload(file string) {
	if p == nil || p.hotReloads == nil {
		return
	}
	p.hotReloads.WithLabelValues(file).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
