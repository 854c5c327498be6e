// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/lvcplx/cplx"
)

// Value is the serialized form of a complex operand.
type Value struct {
	Re float32 `toml:"re" yaml:"re"`
	Im float32 `toml:"im" yaml:"im"`
}

// ValueOf converts z into its serialized form.
func ValueOf(z cplx.Complex) Value {
	return Value{Re: z.A, Im: z.B}
}

// Complex converts v into a cplx.Complex.
func (v Value) Complex() cplx.Complex {
	return cplx.New(v.Re, v.Im)
}

// Step is one operation of a scenario.
//
// Fields:
//   - Name - label printed in front of the result; defaults to Op.
//   - Op   - operation key (see package documentation).
//   - Z, W - complex operands; nil when absent.
//   - X    - real operand (scalar, exponent, base or radius); nil when absent.
type Step struct {
	Name string   `toml:"name" yaml:"name"`
	Op   string   `toml:"op" yaml:"op"`
	Z    *Value   `toml:"z" yaml:"z,omitempty"`
	W    *Value   `toml:"w" yaml:"w,omitempty"`
	X    *float32 `toml:"x" yaml:"x,omitempty"`
}

// File is a titled list of steps.
type File struct {
	Title string `toml:"title" yaml:"title"`
	Steps []Step `toml:"steps" yaml:"steps"`
}

// Result is the outcome of evaluating one Step.
//
// Exactly one of Value or Scalar is meaningful, as reported by IsScalar.
// Err is non-nil when the step failed; Expr is still filled in so the
// failure can be reported next to its operands.
type Result struct {
	Name     string
	Expr     string
	Value    cplx.Complex
	Scalar   float32
	IsScalar bool
	Err      error
}

// String renders "expr = value", or "expr: error: ..." on failure.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Expr, r.Err)
	}
	if r.IsScalar {
		return r.Expr + " = " + formatReal(r.Scalar)
	}
	return r.Expr + " = " + r.Value.String()
}

// formatReal matches the number rendering of cplx.Complex.String.
func formatReal(x float32) string {
	if math32.IsInf(x, 1) {
		return "Inf"
	}
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}
