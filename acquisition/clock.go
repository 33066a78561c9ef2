package acquisition

import (
	"math"
	"math/bits"
	"time"
)

const usPerSecond = 1_000_000

// RunClock tracks how much of the wall-clock budget an acquisition has
// already covered. All arithmetic saturates instead of wrapping.
type RunClock struct {
	Start        time.Time
	SampleRate   uint64
	LimitSamples uint64
	LimitMsec    uint64
	SentSamples  uint64
	SpentUS      uint64
}

// Budget computes how many samples the tick at now must produce and the
// microseconds they represent.
//
// The time budget is the elapsed time minus the time already covered,
// clamped to the time limit. A positive frameSize replaces the time-derived
// count. The sample limit caps the result last.
func (c *RunClock) Budget(now time.Time, frameSize uint64) (samples, todoUS uint64) {
	var elapsed uint64
	if d := now.Sub(c.Start); d > 0 {
		elapsed = uint64(d / time.Microsecond)
	}
	limitUS := c.limitUS()
	if limitUS > 0 && limitUS < elapsed {
		todoUS = subFloor(limitUS, c.SpentUS)
	} else {
		todoUS = subFloor(elapsed, c.SpentUS)
	}

	samples = mulDivCeil(todoUS, c.SampleRate, usPerSecond)
	if frameSize > 0 {
		samples = frameSize
	}
	if c.LimitSamples > 0 {
		if c.LimitSamples < c.SentSamples {
			samples = 0
		} else if left := c.LimitSamples - c.SentSamples; left < samples {
			samples = left
		}
	}
	if c.SampleRate == 0 {
		return samples, 0
	}
	return samples, mulDiv(samples, usPerSecond, c.SampleRate)
}

// Commit records a finished tick.
func (c *RunClock) Commit(samples, todoUS uint64) {
	c.SentSamples = addSat(c.SentSamples, samples)
	c.SpentUS = addSat(c.SpentUS, todoUS)
	if limitUS := c.limitUS(); limitUS > 0 && c.SpentUS > limitUS {
		c.SpentUS = limitUS
	}
}

// LimitReached reports whether a configured sample or time limit has been
// hit.
func (c *RunClock) LimitReached() bool {
	if c.LimitSamples > 0 && c.SentSamples >= c.LimitSamples {
		return true
	}
	limitUS := c.limitUS()
	return limitUS > 0 && c.SpentUS >= limitUS
}

func (c *RunClock) limitUS() uint64 {
	return mulSat(c.LimitMsec, 1000)
}

func subFloor(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

func addSat(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func mulSat(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// mulDiv returns floor(a*b/d) with a 128-bit intermediate, saturating when
// the quotient does not fit 64 bits.
func mulDiv(a, b, d uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, d)
	return q
}

// mulDivCeil returns ceil(a*b/d), saturating like mulDiv.
func mulDivCeil(a, b, d uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return math.MaxUint64
	}
	q, r := bits.Div64(hi, lo, d)
	if r != 0 {
		return addSat(q, 1)
	}
	return q
}
