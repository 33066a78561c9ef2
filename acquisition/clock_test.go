package acquisition

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Unix(1_000, 0)

func TestBudgetFollowsElapsedTime(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 1000}

	samples, us := c.Budget(epoch.Add(3*time.Millisecond), 0)
	require.Equal(t, uint64(3), samples)
	require.Equal(t, uint64(3000), us)
	c.Commit(samples, us)

	samples, us = c.Budget(epoch.Add(6*time.Millisecond), 0)
	require.Equal(t, uint64(3), samples)
	require.Equal(t, uint64(3000), us)
}

func TestBudgetRoundsSamplesUp(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 3}
	samples, us := c.Budget(epoch.Add(time.Microsecond), 0)
	require.Equal(t, uint64(1), samples)
	require.Equal(t, uint64(333_333), us)
	c.Commit(samples, us)

	// The clock ran ahead of wall time, so nothing is owed yet.
	samples, _ = c.Budget(epoch.Add(100*time.Millisecond), 0)
	require.Zero(t, samples)
}

func TestBudgetBeforeStart(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 1000}
	samples, us := c.Budget(epoch.Add(-time.Second), 0)
	require.Zero(t, samples)
	require.Zero(t, us)
}

func TestBudgetFrameSizeReplacesTimeBudget(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 1000}
	samples, us := c.Budget(epoch.Add(time.Second), 7)
	require.Equal(t, uint64(7), samples)
	require.Equal(t, uint64(7000), us)

	samples, _ = c.Budget(epoch, 7)
	require.Equal(t, uint64(7), samples)
}

func TestBudgetSampleLimit(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 1_000_000, LimitSamples: 1000}
	samples, us := c.Budget(epoch.Add(10*time.Millisecond), 0)
	require.Equal(t, uint64(1000), samples)
	require.Equal(t, uint64(1000), us)

	c.SentSamples = 990
	samples, _ = c.Budget(epoch.Add(10*time.Millisecond), 0)
	require.Equal(t, uint64(10), samples)

	c.SentSamples = 1200
	samples, us = c.Budget(epoch.Add(10*time.Millisecond), 0)
	require.Zero(t, samples)
	require.Zero(t, us)
}

func TestBudgetTimeLimit(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 1000, LimitMsec: 100}
	samples, us := c.Budget(epoch.Add(250*time.Millisecond), 0)
	require.Equal(t, uint64(100), samples)
	require.Equal(t, uint64(100_000), us)
	require.False(t, c.LimitReached())
	c.Commit(samples, us)
	require.True(t, c.LimitReached())
}

func TestCommitCapsSpentTimeAtLimit(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: 3, LimitMsec: 100}
	samples, us := c.Budget(epoch.Add(time.Millisecond), 0)
	c.Commit(samples, us)
	require.Equal(t, uint64(100_000), c.SpentUS)
	require.True(t, c.LimitReached())
}

func TestBudgetSaturates(t *testing.T) {
	c := RunClock{Start: epoch, SampleRate: math.MaxUint64}
	samples, _ := c.Budget(epoch.Add(time.Hour), 0)
	require.Equal(t, uint64(math.MaxUint64), samples)

	c = RunClock{Start: epoch, SampleRate: 1000, LimitMsec: math.MaxUint64}
	require.Equal(t, uint64(math.MaxUint64), c.limitUS())
	c.Commit(math.MaxUint64, math.MaxUint64)
	c.Commit(1, 1)
	require.Equal(t, uint64(math.MaxUint64), c.SentSamples)
}

func TestMulDiv(t *testing.T) {
	require.Equal(t, uint64(6), mulDiv(4, 3, 2))
	require.Equal(t, uint64(0), mulDiv(1, 1, 2))
	require.Equal(t, uint64(1), mulDivCeil(1, 1, 2))
	require.Equal(t, uint64(0), mulDivCeil(0, 5, 2))
	require.Equal(t, uint64(1_000_000), mulDiv(math.MaxUint64, 1_000_000, math.MaxUint64))
	require.Equal(t, uint64(math.MaxUint64), mulDiv(math.MaxUint64, 2, 1))
	require.Equal(t, uint64(math.MaxUint64), mulSat(math.MaxUint64, 2))
	require.Equal(t, uint64(0), subFloor(3, 5))
}
