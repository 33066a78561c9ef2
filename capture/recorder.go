// Package capture holds packet consumers: an in-memory recorder, a NumPy
// file writer, running statistics and a fan-out helper.
package capture

import (
	"slices"
	"sync"

	"github.com/timzifer/siggen/acquisition"
)

// Record is a self-contained copy of one packet.
type Record struct {
	Kind     acquisition.Kind
	Header   *acquisition.Header
	End      *acquisition.End
	UnitSize int
	Logic    []byte
	Channel  int
	Name     string
	Samples  []float32
	Averaged bool
}

// Recorder keeps a copy of every packet it receives.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Send implements acquisition.Sink.
func (r *Recorder) Send(p acquisition.Packet) error {
	rec := Record{Kind: p.Kind()}
	switch v := p.(type) {
	case *acquisition.Header:
		h := *v
		h.AnalogChannels = slices.Clone(v.AnalogChannels)
		rec.Header = &h
	case *acquisition.Logic:
		rec.UnitSize = v.UnitSize
		rec.Logic = slices.Clone(v.Data)
	case *acquisition.Analog:
		rec.Channel = v.Channel
		rec.Name = v.Name
		rec.Samples = slices.Clone(v.Samples)
		rec.Averaged = v.Averaged
	case *acquisition.End:
		e := *v
		rec.End = &e
	}
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return nil
}

// Records returns the recorded packets in arrival order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records)
}

// Kinds returns the kind of every recorded packet.
func (r *Recorder) Kinds() []acquisition.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]acquisition.Kind, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Kind
	}
	return out
}

// Logic concatenates all logic payloads.
func (r *Recorder) Logic() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []byte
	for _, rec := range r.records {
		if rec.Kind == acquisition.KindLogic {
			out = append(out, rec.Logic...)
		}
	}
	return out
}

// Analog concatenates the samples of analog channel ch.
func (r *Recorder) Analog(ch int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []float32
	for _, rec := range r.records {
		if rec.Kind == acquisition.KindAnalog && rec.Channel == ch {
			out = append(out, rec.Samples...)
		}
	}
	return out
}

// Reset drops all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}
