package analog

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression is a compiled user formula producing one sample value.
//
// The formula sees i (sample index), t (seconds), f (the fundamental
// frequency, sample rate / SamplesPerPeriod), amplitude and pi, plus the
// trigonometric helpers below and expr's builtins.
type Expression struct {
	source  string
	program *vm.Program
}

func expressionEnv() map[string]interface{} {
	return map[string]interface{}{
		"i":         0.0,
		"t":         0.0,
		"f":         0.0,
		"amplitude": 0.0,
		"pi":        math.Pi,
		"sin":       math.Sin,
		"cos":       math.Cos,
		"tan":       math.Tan,
		"asin":      math.Asin,
		"acos":      math.Acos,
		"atan":      math.Atan,
		"sqrt":      math.Sqrt,
		"exp":       math.Exp,
		"mod":       math.Mod,
	}
}

// CompileExpression parses and type-checks source.
func CompileExpression(source string) (*Expression, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("expression must not be empty")
	}
	program, err := expr.Compile(source, expr.Env(expressionEnv()), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", source, err)
	}
	return &Expression{source: source, program: program}, nil
}

// String returns the expression source.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	return e.source
}

func (e *Expression) evaluate(numSamples int, rate, amplitude float64) ([]float32, error) {
	env := expressionEnv()
	env["f"] = rate / SamplesPerPeriod
	env["amplitude"] = amplitude
	data := make([]float32, numSamples)
	for i := range data {
		env["i"] = float64(i)
		env["t"] = float64(i) / rate
		out, err := expr.Run(e.program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluate expression %q at sample %d: %w", e.source, i, err)
		}
		value, ok := out.(float64)
		if !ok {
			return nil, fmt.Errorf("expression %q returned %T, want float64", e.source, out)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("expression %q is not finite at sample %d", e.source, i)
		}
		data[i] = float32(value)
	}
	return data, nil
}
