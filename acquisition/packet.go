package acquisition

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind identifies a packet type.
type Kind int

const (
	KindHeader Kind = iota
	KindLogic
	KindAnalog
	KindFrameBegin
	KindFrameEnd
	KindEnd
)

var kindNames = [...]string{
	KindHeader:     "header",
	KindLogic:      "logic",
	KindAnalog:     "analog",
	KindFrameBegin: "frame_begin",
	KindFrameEnd:   "frame_end",
	KindEnd:        "end",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Packet is one record delivered to a Sink. Logic and Analog payloads alias
// scheduler-owned buffers and are only valid during the Send call; sinks
// that keep data must copy it.
type Packet interface {
	Kind() Kind
}

// Header opens an acquisition.
type Header struct {
	RunID          ulid.ULID
	Start          time.Time
	SampleRate     uint64
	UnitSize       int
	LogicChannels  int
	AnalogChannels []string
}

// Logic carries packed logic rows. len(Data) is a multiple of UnitSize.
type Logic struct {
	UnitSize int
	Data     []byte
}

// Rows returns the number of sample rows in the packet.
func (l *Logic) Rows() int {
	if l.UnitSize <= 0 {
		return 0
	}
	return len(l.Data) / l.UnitSize
}

// Analog carries float samples of a single analog channel.
type Analog struct {
	Channel   int
	Name      string
	Samples   []float32
	Averaged  bool
	Amplitude float64
}

// FrameBegin opens a frame.
type FrameBegin struct{}

// FrameEnd closes a frame.
type FrameEnd struct{}

// End closes an acquisition.
type End struct {
	RunID       ulid.ULID
	SentSamples uint64
	Frames      uint64
	Err         error
}

func (*Header) Kind() Kind     { return KindHeader }
func (*Logic) Kind() Kind      { return KindLogic }
func (*Analog) Kind() Kind     { return KindAnalog }
func (*FrameBegin) Kind() Kind { return KindFrameBegin }
func (*FrameEnd) Kind() Kind   { return KindFrameEnd }
func (*End) Kind() Kind        { return KindEnd }

// Sink consumes packets in emission order. A returned error is logged and
// counted but does not abort the acquisition.
type Sink interface {
	Send(Packet) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Packet) error

// Send calls f(p).
func (f SinkFunc) Send(p Packet) error { return f(p) }

// Discard is a Sink that drops every packet.
var Discard Sink = SinkFunc(func(Packet) error { return nil })

// ErrSinkClosed may be returned by sinks that no longer accept packets.
var ErrSinkClosed = errors.New("sink closed")
