package analog

import (
	"fmt"

	"github.com/timzifer/siggen/patterns"
)

// Channel holds the generator state of one analog channel: its waveform
// ring, read cursor and averaging accumulator. The waveform is recomputed
// only when the pattern, amplitude or sample rate changes.
type Channel struct {
	id         int
	name       string
	spec       Spec
	sampleRate uint64
	waveform   []float32
	cursor     int
	averager   Averager
	out        [1]float32
}

// NewChannel creates the state for channel id. The waveform is empty until
// Configure is called with a sample rate.
func NewChannel(id int, name string, spec Spec, decimation uint64) *Channel {
	return &Channel{
		id:       id,
		name:     name,
		spec:     spec,
		averager: NewAverager(decimation),
	}
}

// ID returns the stable channel index assigned at configuration time.
func (c *Channel) ID() int { return c.id }

// Name returns the channel name.
func (c *Channel) Name() string { return c.name }

// Spec returns the waveform selection.
func (c *Channel) Spec() Spec { return c.spec }

// Len returns the waveform ring length; zero means the channel has no data.
func (c *Channel) Len() int { return len(c.waveform) }

// Cursor returns the current read position in the ring.
func (c *Channel) Cursor() int { return c.cursor }

// Averager exposes the channel's decimator.
func (c *Channel) Averager() *Averager { return &c.averager }

// Configure synthesizes the waveform for sampleRate. On failure the channel
// is left without data.
func (c *Channel) Configure(sampleRate uint64) error {
	c.sampleRate = sampleRate
	return c.regenerate()
}

// SetSpec changes pattern, amplitude or expression and recomputes the
// waveform if a sample rate is known.
func (c *Channel) SetSpec(spec Spec) error {
	c.spec = spec
	if c.sampleRate == 0 {
		return nil
	}
	return c.regenerate()
}

func (c *Channel) regenerate() error {
	waveform, err := Synthesize(c.spec, c.sampleRate)
	if err != nil {
		c.waveform = nil
		c.cursor = 0
		return fmt.Errorf("channel %s: %w", c.name, err)
	}
	c.waveform = waveform
	if c.cursor >= len(waveform) {
		c.cursor = 0
	}
	return nil
}

// Rewind moves the cursor to the start of the ring and clears the averager.
func (c *Channel) Rewind() {
	c.cursor = 0
	c.averager.Reset()
}

// Available returns how many samples can be read before the ring wraps.
func (c *Channel) Available() int {
	return len(c.waveform) - c.cursor
}

// Read returns up to n samples starting at the cursor without wrapping and
// advances the cursor past them. The slice aliases the waveform buffer.
func (c *Channel) Read(n int) []float32 {
	if len(c.waveform) == 0 || n <= 0 {
		return nil
	}
	if avail := c.Available(); n > avail {
		n = avail
	}
	out := c.waveform[c.cursor : c.cursor+n]
	c.cursor += n
	if c.cursor == len(c.waveform) {
		c.cursor = 0
	}
	return out
}

// Single wraps v in a one-sample slice owned by the channel, for emitting
// averaged values without allocating.
func (c *Channel) Single(v float32) []float32 {
	c.out[0] = v
	return c.out[:]
}

// String describes the channel for logs.
func (c *Channel) String() string {
	pattern := c.spec.Pattern.String()
	if c.spec.Pattern == patterns.AnalogExpression {
		pattern = fmt.Sprintf("%s(%s)", pattern, c.spec.Expression)
	}
	return fmt.Sprintf("%s[%s amplitude=%g]", c.name, pattern, c.spec.Amplitude)
}
