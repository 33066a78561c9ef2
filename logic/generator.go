package logic

import (
	"errors"
	"fmt"
	mathrand "math/rand"
	"time"

	"github.com/timzifer/siggen/patterns"
)

// BufferSize is the size in bytes of the reusable working buffer. A single
// Fill never produces more than this many bytes.
const BufferSize = 4096

// MaxChannels is the largest logic channel count a generator accepts.
const MaxChannels = BufferSize * 8

// ErrUnknownPattern is returned by Fill when the selected pattern is not one
// of the known patterns.Logic kinds.
var ErrUnknownPattern = errors.New("unknown logic pattern")

// UnitSize returns the number of bytes needed for one sample row of
// numChannels logic channels.
func UnitSize(numChannels int) int {
	if numChannels <= 0 {
		return 0
	}
	return (numChannels + 7) / 8
}

// Generator produces packed logic sample rows for one pattern. The step
// cursor persists across Fill calls so consecutive chunks continue the
// pattern without a seam.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	numChannels int
	unitSize    int
	pattern     patterns.Logic
	step        uint64
	walkTop     uint64
	buf         []byte
	rng         *mathrand.Rand
}

// NewGenerator prepares a generator for numChannels channels. A nil seed
// seeds the random pattern from the wall clock.
func NewGenerator(numChannels int, pattern patterns.Logic, seed *int64) (*Generator, error) {
	if numChannels <= 0 {
		return nil, fmt.Errorf("logic channel count must be positive, got %d", numChannels)
	}
	if numChannels > MaxChannels {
		return nil, fmt.Errorf("logic channel count %d exceeds %d", numChannels, MaxChannels)
	}
	var src mathrand.Source
	if seed != nil {
		src = mathrand.NewSource(*seed)
	} else {
		src = mathrand.NewSource(time.Now().UnixNano())
	}
	walkBits := numChannels
	if walkBits > 64 {
		walkBits = 64
	}
	g := &Generator{
		numChannels: numChannels,
		unitSize:    UnitSize(numChannels),
		walkTop:     uint64(1) << (walkBits - 1),
		buf:         make([]byte, BufferSize),
		rng:         mathrand.New(src),
	}
	g.SetPattern(pattern)
	return g, nil
}

// UnitSize returns the number of bytes per sample row.
func (g *Generator) UnitSize() int { return g.unitSize }

// NumChannels returns the total logic channel count.
func (g *Generator) NumChannels() int { return g.numChannels }

// Pattern returns the active pattern.
func (g *Generator) Pattern() patterns.Logic { return g.pattern }

// Step returns the pattern cursor.
func (g *Generator) Step() uint64 { return g.step }

// MaxRows returns how many sample rows fit into one Fill.
func (g *Generator) MaxRows() int { return len(g.buf) / g.unitSize }

// SetPattern switches the active pattern. The constant patterns are written
// into the working buffer here and never regenerated afterwards.
func (g *Generator) SetPattern(pattern patterns.Logic) {
	g.pattern = pattern
	switch pattern {
	case patterns.LogicAllLow:
		fill(g.buf, 0x00)
	case patterns.LogicAllHigh:
		fill(g.buf, 0xff)
	}
}

// Reset rewinds the pattern cursor to its initial position.
func (g *Generator) Reset() {
	g.step = 0
}

// Fill generates size bytes of sample data and returns a view of the working
// buffer. size is trimmed to whole rows and to BufferSize. The returned slice
// is only valid until the next Fill or SetPattern call.
func (g *Generator) Fill(size int) ([]byte, error) {
	if size < 0 {
		size = 0
	}
	if size > len(g.buf) {
		size = len(g.buf)
	}
	size -= size % g.unitSize
	data := g.buf[:size]

	switch g.pattern {
	case patterns.LogicSigrok:
		for off := 0; off < size; off += g.unitSize {
			for j := 0; j < g.unitSize; j++ {
				pat := patterns.SigrokByte(g.step+uint64(j)) >> 1
				data[off+j] = ^pat
			}
			g.step++
		}
	case patterns.LogicRandom:
		_, _ = g.rng.Read(data)
	case patterns.LogicIncremental:
		for off := 0; off < size; off += g.unitSize {
			fill(data[off:off+g.unitSize], byte(g.step))
			g.step++
		}
	case patterns.LogicWalkingOne:
		for off := 0; off < size; off += g.unitSize {
			putWord(data[off:off+g.unitSize], g.step, 0x00)
			g.advanceWalk()
		}
	case patterns.LogicWalkingZero:
		for off := 0; off < size; off += g.unitSize {
			putWord(data[off:off+g.unitSize], ^g.step, 0xff)
			g.advanceWalk()
		}
	case patterns.LogicAllLow, patterns.LogicAllHigh:
		// Written once by SetPattern.
	case patterns.LogicSquid:
		for off := 0; off < size; off += g.unitSize {
			for j := 0; j < g.unitSize; j++ {
				data[off+j] = patterns.SquidByte(g.step, j)
			}
			g.step = (g.step + 1) % patterns.SquidColumns
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, int(g.pattern))
	}
	return data, nil
}

// advanceWalk moves the walking bit: 0 -> 1 -> 2 -> ... -> top -> 0.
func (g *Generator) advanceWalk() {
	switch {
	case g.step == 0:
		g.step = 1
	case g.step >= g.walkTop:
		g.step = 0
	default:
		g.step <<= 1
	}
}

// putWord stores v little endian into row and pads bytes past the eighth.
func putWord(row []byte, v uint64, pad byte) {
	for j := range row {
		if j < 8 {
			row[j] = byte(v >> (8 * j))
		} else {
			row[j] = pad
		}
	}
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
