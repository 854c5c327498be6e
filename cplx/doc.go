// SPDX-License-Identifier: MIT

// Package cplx implements an immutable single-precision complex number
// together with its algebra: arithmetic, polar conversion, powers with real
// or complex bases and exponents, logarithms, trigonometric functions and a
// canonical text rendering.
//
// 🚀 What is a Complex?
//
//	A point (A, B) in the real×imaginary plane, A the real part and B the
//	imaginary part, both float32. The same point in polar form is (r, θ)
//	with r = |z| and θ = atan2(B, A) in (−π, π].
//
// ✨ Key features:
//   - value semantics: every operation returns a new Complex
//   - products and quotients computed in polar form (De Moivre)
//   - z^p, c^w and z^w built on the single real-base case c^(x+yi)
//   - multiplying by i is conj-then-swap: i·(x+yi) = (−y) + xi
//   - sin, cos, tan derived from the complex exponential (Euler)
//   - generic scalar mixing for every Go integer and float kind
//   - canonical String: 5 decimals, zero-term elision, "(a - bi)" signs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcplx/cplx"
//
//	z := cplx.New(1, 1)
//	fmt.Println(z.Mul(z))                                  // (2i)
//	fmt.Println(cplx.RealPow(cplx.E, cplx.New(0, cplx.Pi))) // (-1)
//
//	u, err := z.Normalize()
//	if err != nil {
//	  // errors.Is(err, cplx.ErrDegenerateNormalization)
//	}
//
// Numeric policy:
//
//   - Normalization is the only guarded operation: a zero-magnitude input
//     fails with ErrDegenerateNormalization.
//   - Everything else (Quo by zero, Log of zero, 0 raised to a negative
//     power) follows IEEE-754 and yields ±Inf or NaN.
//   - Mod is component-wise fmod and carries no complex-analytic meaning.
//
// All functions are pure and safe for concurrent use.
// NormalizeInPlace is the single mutating operation and touches only its
// argument.
package cplx
