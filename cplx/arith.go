// SPDX-License-Identifier: MIT
// Package: cplx
//
// Purpose:
//   - Arithmetic between two Complex values (component-wise +, −, %; polar ×, ÷).
//   - Mixed real/complex arithmetic through the generic Scalar constraint, one
//     free function per operand order instead of an overload per numeric kind.
//
// Numeric policy:
//   - A real operand c behaves as (c, 0) for +, − and polar ÷.
//   - Scaling by a real (×, ÷, %) applies to both components.
//   - No zero guards: dividing by zero yields ±Inf/NaN.

package cplx

import "github.com/chewxy/math32"

// Scalar is any real Go number that can be mixed with a Complex.
// Values are narrowed to float32 before use.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{A: z.A + w.A, B: z.B + w.B}
}

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{A: z.A - w.A, B: z.B - w.B}
}

// Neg returns −z.
func (z Complex) Neg() Complex {
	return Complex{A: -z.A, B: -z.B}
}

// Mul returns z·w in polar form: magnitudes multiply and angles add.
func (z Complex) Mul(w Complex) Complex {
	r1, theta1 := z.ToPolar()
	r2, theta2 := w.ToPolar()
	return FromPolar(r1*r2, theta1+theta2)
}

// Quo returns z/w in polar form: magnitudes divide and angles subtract.
// A zero-magnitude w is not guarded.
func (z Complex) Quo(w Complex) Complex {
	r1, theta1 := z.ToPolar()
	r2, theta2 := w.ToPolar()
	return FromPolar(r1/r2, theta1-theta2)
}

// Mod returns (a1 mod a2, b1 mod b2) using fmod on each component.
// It is a convenience for callers that want component-wise wrapping and has
// no complex-analytic meaning.
func (z Complex) Mod(w Complex) Complex {
	return Complex{A: math32.Mod(z.A, w.A), B: math32.Mod(z.B, w.B)}
}

// Scale returns (a·k, b·k).
func (z Complex) Scale(k float32) Complex {
	return Complex{A: z.A * k, B: z.B * k}
}

// Inc returns z with 1 added to both components.
func (z Complex) Inc() Complex {
	return Complex{A: z.A + 1, B: z.B + 1}
}

// Dec returns z with 1 subtracted from both components.
func (z Complex) Dec() Complex {
	return Complex{A: z.A - 1, B: z.B - 1}
}

// AddScalar returns z + c; only the real part changes.
func AddScalar[T Scalar](z Complex, c T) Complex {
	return Complex{A: z.A + float32(c), B: z.B}
}

// ScalarAdd returns c + z; only the real part changes.
func ScalarAdd[T Scalar](c T, z Complex) Complex {
	return Complex{A: float32(c) + z.A, B: z.B}
}

// SubScalar returns z − c.
func SubScalar[T Scalar](z Complex, c T) Complex {
	return Complex{A: z.A - float32(c), B: z.B}
}

// ScalarSub returns c − z = (c − a, −b).
func ScalarSub[T Scalar](c T, z Complex) Complex {
	return Complex{A: float32(c) - z.A, B: -z.B}
}

// MulScalar returns z·c.
func MulScalar[T Scalar](z Complex, c T) Complex {
	return z.Scale(float32(c))
}

// ScalarMul returns c·z.
func ScalarMul[T Scalar](c T, z Complex) Complex {
	return z.Scale(float32(c))
}

// QuoScalar returns z/c = (a/c, b/c).
func QuoScalar[T Scalar](z Complex, c T) Complex {
	k := float32(c)
	return Complex{A: z.A / k, B: z.B / k}
}

// ScalarQuo returns c/z evaluated as c·z^(−1).
// It agrees with ComplexDivide within float32 rounding.
func ScalarQuo[T Scalar](c T, z Complex) Complex {
	return z.Pow(-1).Scale(float32(c))
}

// ComplexDivide returns c/z by direct polar division of (c, 0) by z.
func ComplexDivide[T Scalar](c T, z Complex) Complex {
	return Real(c).Quo(z)
}

// ModScalar returns (a mod c, b mod c).
func ModScalar[T Scalar](z Complex, c T) Complex {
	k := float32(c)
	return Complex{A: math32.Mod(z.A, k), B: math32.Mod(z.B, k)}
}

// ScalarMod returns (a mod c, b mod c), the same value as ModScalar(z, c):
// the scalar is always the divisor, whichever side it is written on.
func ScalarMod[T Scalar](c T, z Complex) Complex {
	return ModScalar(z, c)
}
