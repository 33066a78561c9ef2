// Package patterns holds the fixed test patterns of the virtual instrument.
//
// Everything in this package is immutable: the lookup tables are package-level
// arrays that are only ever read, so generators for different channels can
// share them freely.
package patterns

import (
	"fmt"
	"strings"
)

// Logic identifies a digital test pattern.
type Logic int

const (
	// LogicSigrok replays the branding bitmap column by column.
	LogicSigrok Logic = iota
	// LogicRandom draws independent pseudo-random bytes.
	LogicRandom
	// LogicIncremental counts up by one per sample row.
	LogicIncremental
	// LogicWalkingOne moves a single set bit across all channels.
	LogicWalkingOne
	// LogicWalkingZero moves a single cleared bit across all channels.
	LogicWalkingZero
	// LogicAllLow holds every channel low.
	LogicAllLow
	// LogicAllHigh holds every channel high.
	LogicAllHigh
	// LogicSquid replays the squid raster image column by column.
	LogicSquid
)

var logicNames = [...]string{
	LogicSigrok:      "sigrok",
	LogicRandom:      "random",
	LogicIncremental: "incremental",
	LogicWalkingOne:  "walking-one",
	LogicWalkingZero: "walking-zero",
	LogicAllLow:      "all-low",
	LogicAllHigh:     "all-high",
	LogicSquid:       "squid",
}

func (p Logic) String() string {
	if !p.Valid() {
		return fmt.Sprintf("logic(%d)", int(p))
	}
	return logicNames[p]
}

// Valid reports whether p names a known logic pattern.
func (p Logic) Valid() bool {
	return p >= 0 && int(p) < len(logicNames)
}

// ParseLogic resolves a logic pattern by name. Matching ignores case and
// surrounding whitespace; an empty name selects LogicSigrok.
func ParseLogic(name string) (Logic, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return LogicSigrok, nil
	}
	for i, candidate := range logicNames {
		if candidate == normalized {
			return Logic(i), nil
		}
	}
	return 0, fmt.Errorf("unknown logic pattern %q", name)
}

// LogicKinds lists all logic patterns in declaration order.
func LogicKinds() []Logic {
	kinds := make([]Logic, len(logicNames))
	for i := range logicNames {
		kinds[i] = Logic(i)
	}
	return kinds
}

// Analog identifies an analog waveform.
type Analog int

const (
	AnalogSquare Analog = iota
	AnalogSine
	AnalogTriangle
	AnalogSawtooth
	// AnalogExpression evaluates a user supplied formula per sample.
	AnalogExpression
)

var analogNames = [...]string{
	AnalogSquare:     "square",
	AnalogSine:       "sine",
	AnalogTriangle:   "triangle",
	AnalogSawtooth:   "sawtooth",
	AnalogExpression: "expression",
}

func (p Analog) String() string {
	if !p.Valid() {
		return fmt.Sprintf("analog(%d)", int(p))
	}
	return analogNames[p]
}

// Valid reports whether p names a known analog waveform.
func (p Analog) Valid() bool {
	return p >= 0 && int(p) < len(analogNames)
}

// ParseAnalog resolves an analog waveform by name.
func ParseAnalog(name string) (Analog, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range analogNames {
		if candidate == normalized {
			return Analog(i), nil
		}
	}
	return 0, fmt.Errorf("unknown analog pattern %q", name)
}

// AnalogKinds lists all analog waveforms in declaration order.
func AnalogKinds() []Analog {
	kinds := make([]Analog, len(analogNames))
	for i := range analogNames {
		kinds[i] = Analog(i)
	}
	return kinds
}

// DefaultAnalog returns the waveform assigned to analog channel index when the
// configuration does not name one. Channels cycle through the four periodic
// shapes.
func DefaultAnalog(index int) Analog {
	if index < 0 {
		index = -index
	}
	return Analog(index % int(AnalogExpression))
}

const (
	// SquidColumns is the number of columns (sample rows) in the squid image.
	SquidColumns = 128
	// SquidHeight is the number of bytes per squid column.
	SquidHeight = 128 / 8
)

// SigrokLen returns the length of the branding table.
func SigrokLen() int { return len(sigrokTable) }

// SigrokByte returns the branding table entry at i, wrapping around its length.
func SigrokByte(i uint64) byte {
	return sigrokTable[i%uint64(len(sigrokTable))]
}

// SquidByte returns byte row of image column col. Both indices wrap.
func SquidByte(col uint64, row int) byte {
	return squidTable[col%SquidColumns][row%SquidHeight]
}
