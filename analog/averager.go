package analog

// FoldResult reports what one Fold call did.
type FoldResult struct {
	// Consumed is the number of input samples folded into the average.
	Consumed int
	// Emit is set when the decimation factor was reached; Value then holds the
	// averaged sample and the accumulator has been reset.
	Emit  bool
	Value float32
}

// Averager is a running-average decimator. Every folded sample updates the
// accumulator as avg = (avg + sample) / 2, so recent samples weigh more than
// in an arithmetic mean.
//
// A zero factor averages the entire run; the caller emits the result with
// Flush once the run ends.
type Averager struct {
	factor uint64
	avg    float32
	count  uint64
}

// NewAverager returns an averager emitting one sample per factor inputs.
func NewAverager(factor uint64) Averager {
	return Averager{factor: factor}
}

// Factor returns the decimation factor.
func (a *Averager) Factor() uint64 { return a.factor }

// Pending returns how many samples have been folded since the last emission.
func (a *Averager) Pending() uint64 { return a.count }

// Value returns the current accumulator.
func (a *Averager) Value() float32 { return a.avg }

// Remaining returns how many more samples complete the current decimation
// window, or -1 when averaging the whole run.
func (a *Averager) Remaining() int64 {
	if a.factor == 0 {
		return -1
	}
	if a.count >= a.factor {
		return 0
	}
	return int64(a.factor - a.count)
}

// Fold consumes samples until the decimation factor is reached or the input
// is exhausted. Folding an empty slice does nothing.
func (a *Averager) Fold(samples []float32) FoldResult {
	for i, sample := range samples {
		a.avg = (a.avg + sample) / 2
		a.count++
		if a.factor > 0 && a.count >= a.factor {
			value := a.avg
			a.Reset()
			return FoldResult{Consumed: i + 1, Emit: true, Value: value}
		}
	}
	return FoldResult{Consumed: len(samples)}
}

// Flush returns the accumulator and the number of samples it holds, then
// resets it.
func (a *Averager) Flush() (float32, uint64) {
	value, count := a.avg, a.count
	a.Reset()
	return value, count
}

// Reset clears the accumulator.
func (a *Averager) Reset() {
	a.avg = 0
	a.count = 0
}
