package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var siPrefixes = []struct {
	suffix string
	label  string
	exp    int32
}{
	{"g", "G", 9},
	{"m", "M", 6},
	{"k", "k", 3},
}

// ParseSampleRate converts strings such as "1000", "200k", "1.5 MHz" or
// "2G" into hertz. The conversion is exact; rates with a fractional hertz
// part are rejected.
func ParseSampleRate(raw string) (uint64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "hz")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("sample rate %q is empty", raw)
	}
	var exp int32
	for _, p := range siPrefixes {
		if strings.HasSuffix(s, p.suffix) {
			exp = p.exp
			s = strings.TrimSpace(strings.TrimSuffix(s, p.suffix))
			break
		}
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse sample rate %q: %w", raw, err)
	}
	value = value.Shift(exp)
	if value.Sign() < 0 {
		return 0, fmt.Errorf("sample rate %q is negative", raw)
	}
	if !value.Equal(value.Truncate(0)) {
		return 0, fmt.Errorf("sample rate %q is not a whole number of hertz", raw)
	}
	if !value.BigInt().IsUint64() {
		return 0, fmt.Errorf("sample rate %q overflows", raw)
	}
	return value.BigInt().Uint64(), nil
}

// FormatSampleRate renders hz with the largest SI prefix that keeps the
// value exact, e.g. 200000 -> "200k", 1500000 -> "1.5M".
func FormatSampleRate(hz uint64) string {
	value := decimal.NewFromBigInt(new(big.Int).SetUint64(hz), 0)
	one := decimal.NewFromInt(1)
	for _, p := range siPrefixes {
		scaled := value.Shift(-p.exp)
		if scaled.GreaterThanOrEqual(one) {
			return scaled.String() + p.label
		}
	}
	return value.String()
}
