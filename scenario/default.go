// SPDX-License-Identifier: MIT

package scenario

import "github.com/katalvlaran/lvcplx/cplx"

func val(a, b float32) *Value { return &Value{Re: a, Im: b} }

func real32(x float32) *float32 { return &x }

// Default returns the built-in tour: the arithmetic and Euler samples first,
// then the logarithm, trigonometric and normalization families.
func Default() File {
	z := val(1, 1)
	return File{
		Title: "Complex algebra tour",
		Steps: []Step{
			{Name: "square", Op: "mul", Z: z, W: z},
			{Name: "quotient", Op: "quo", Z: z, W: val(2, 1)},
			{Name: "power", Op: "pow", Z: z, X: real32(3.5)},
			{Name: "negation", Op: "neg", Z: z},
			{Name: "euler", Op: "rpow", Z: val(0, cplx.Pi), X: real32(cplx.E)},
			{Name: "euler-shifted", Op: "rpow", Z: val(2, cplx.Pi), X: real32(cplx.E)},
			{Name: "real-over-complex", Op: "rquo", Z: val(2, 1), X: real32(3)},
			{Name: "complex-power", Op: "powc", Z: z, W: val(0.5, 0.25)},
			{Name: "logarithm", Op: "log", Z: z},
			{Name: "sine", Op: "sin", Z: val(0.63, 0.5)},
			{Name: "cosine", Op: "cos", Z: val(0.63, 0.5)},
			{Name: "tangent", Op: "tan", Z: val(0.63, 0.5)},
			{Name: "unit", Op: "normalize", Z: val(3, 4)},
			{Name: "degenerate", Op: "normalize", Z: val(0, 0)},
		},
	}
}
