package capture

import (
	"math"
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/timzifer/siggen/acquisition"
)

// ChannelStats summarises the samples of one analog channel.
type ChannelStats struct {
	Channel int
	Name    string
	Count   uint64
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64

	m2 float64
}

// LogicStats summarises the logic stream. High[i] counts the rows in which
// channel i was high.
type LogicStats struct {
	UnitSize int
	Rows     uint64
	High     []uint64
}

// DutyCycle returns the fraction of rows in which channel ch was high.
func (l LogicStats) DutyCycle(ch int) float64 {
	if l.Rows == 0 || ch < 0 || ch >= len(l.High) {
		return 0
	}
	return float64(l.High[ch]) / float64(l.Rows)
}

// Report is a snapshot of a Summary.
type Report struct {
	RunID      ulid.ULID
	SampleRate uint64
	Logic      LogicStats
	Analog     []ChannelStats
	Packets    map[acquisition.Kind]int
	Sent       uint64
}

// Summary computes running statistics over the packets it receives without
// keeping the samples.
type Summary struct {
	mu      sync.Mutex
	report  Report
	analog  map[int]*ChannelStats
	scratch []float64
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{
		report: Report{Packets: make(map[acquisition.Kind]int)},
		analog: make(map[int]*ChannelStats),
	}
}

// Send implements acquisition.Sink.
func (s *Summary) Send(p acquisition.Packet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.Packets[p.Kind()]++
	switch v := p.(type) {
	case *acquisition.Header:
		s.report.RunID = v.RunID
		s.report.SampleRate = v.SampleRate
	case *acquisition.Logic:
		s.addLogic(v)
	case *acquisition.Analog:
		s.addAnalog(v)
	case *acquisition.End:
		s.report.Sent = v.SentSamples
	}
	return nil
}

func (s *Summary) addLogic(l *acquisition.Logic) {
	if l.UnitSize <= 0 {
		return
	}
	st := &s.report.Logic
	if st.UnitSize != l.UnitSize {
		st.UnitSize = l.UnitSize
		st.High = make([]uint64, l.UnitSize*8)
	}
	for off := 0; off+l.UnitSize <= len(l.Data); off += l.UnitSize {
		for j, b := range l.Data[off : off+l.UnitSize] {
			for bit := 0; b != 0; bit, b = bit+1, b>>1 {
				if b&1 != 0 {
					st.High[j*8+bit]++
				}
			}
		}
		st.Rows++
	}
}

func (s *Summary) addAnalog(a *acquisition.Analog) {
	if len(a.Samples) == 0 {
		return
	}
	s.scratch = s.scratch[:0]
	for _, v := range a.Samples {
		s.scratch = append(s.scratch, float64(v))
	}
	mean, variance := stat.MeanVariance(s.scratch, nil)
	n := float64(len(s.scratch))
	m2 := 0.0
	if len(s.scratch) > 1 {
		m2 = variance * (n - 1)
	}
	lo, hi := floats.Min(s.scratch), floats.Max(s.scratch)

	st, ok := s.analog[a.Channel]
	if !ok {
		st = &ChannelStats{Channel: a.Channel, Name: a.Name, Min: lo, Max: hi}
		s.analog[a.Channel] = st
	}
	st.Min = math.Min(st.Min, lo)
	st.Max = math.Max(st.Max, hi)

	// Merge the chunk moments into the running ones.
	total := float64(st.Count) + n
	delta := mean - st.Mean
	st.Mean += delta * n / total
	st.m2 += m2 + delta*delta*float64(st.Count)*n/total
	st.Count += uint64(len(s.scratch))
	if st.Count > 1 {
		st.StdDev = math.Sqrt(st.m2 / float64(st.Count-1))
	}
}

// Report returns the statistics gathered so far, analog channels ordered by
// index.
func (s *Summary) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.report
	out.Logic.High = append([]uint64(nil), s.report.Logic.High...)
	out.Packets = make(map[acquisition.Kind]int, len(s.report.Packets))
	for k, v := range s.report.Packets {
		out.Packets[k] = v
	}
	out.Analog = make([]ChannelStats, 0, len(s.analog))
	for _, st := range s.analog {
		out.Analog = append(out.Analog, *st)
	}
	sort.Slice(out.Analog, func(i, j int) bool { return out.Analog[i].Channel < out.Analog[j].Channel })
	return out
}

// Log writes the report at info level.
func (s *Summary) Log(logger zerolog.Logger) {
	r := s.Report()
	logger.Info().
		Str("run", r.RunID.String()).
		Uint64("sample_rate", r.SampleRate).
		Uint64("sent_samples", r.Sent).
		Uint64("logic_rows", r.Logic.Rows).
		Int("analog_channels", len(r.Analog)).
		Msg("acquisition summary")
	for _, ch := range r.Analog {
		logger.Info().
			Str("channel", ch.Name).
			Uint64("count", ch.Count).
			Float64("min", ch.Min).
			Float64("max", ch.Max).
			Float64("mean", ch.Mean).
			Float64("stddev", ch.StdDev).
			Msg("analog channel")
	}
	for i := range r.Logic.High {
		logger.Debug().
			Str("channel", acquisition.LogicChannelName(i)).
			Float64("duty_cycle", r.Logic.DutyCycle(i)).
			Msg("logic channel")
	}
}
