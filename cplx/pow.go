// SPDX-License-Identifier: MIT
// Package: cplx
//
// Purpose:
//   - Powers, exponential, logarithms and circle inversion.
//
// Design:
//   - RealPow (real base, complex exponent) is the single primitive:
//     c^(x+yi) = c^x · (cos(y ln c) + i·sin(y ln c)).
//   - z^p scales the polar angle and exponentiates the radius.
//   - z^w splits into r1^w · e^(i·θ1·w) with w rebuilt from its own polar
//     form, so both factors reduce to RealPow; i·u is u.Conj().Swapped().
//
// Numeric policy:
//   - No guards: ln 0 = −Inf and 0^(−p) = +Inf flow through unchanged.

package cplx

import "github.com/chewxy/math32"

// RealPow returns c raised to the complex power w.
func RealPow[T Scalar](c T, w Complex) Complex {
	base := float32(c)
	phase := FromAngle(w.B * math32.Log(base))
	return phase.Scale(math32.Pow(base, w.A))
}

// Exp returns e^z.
func Exp(z Complex) Complex {
	return RealPow(E, z)
}

// Pow returns z raised to the real power p:
// r^p·(cos(pθ) + i·sin(pθ)).
func (z Complex) Pow(p float32) Complex {
	r, theta := z.ToPolar()
	rp := math32.Pow(r, p)
	c, s := cosSin(theta * p)
	return Complex{A: rp * c, B: rp * s}
}

// PowComplex returns z raised to the complex power w.
//
// With z = (r1, θ1) and w = (r2, θ2) in polar form:
//
//	z^w = r1^(r2·e^(iθ2)) · e^(i·θ1·r2·e^(iθ2))
func (z Complex) PowComplex(w Complex) Complex {
	r1, theta1 := z.ToPolar()
	r2, theta2 := w.ToPolar()

	exponent := FromAngle(theta2).Scale(r2)
	radial := RealPow(r1, exponent)
	angular := RealPow(E, exponent.Scale(theta1).TimesI())

	return radial.Mul(angular)
}

// Log returns the principal natural logarithm ln|z| + i·arg(z).
func (z Complex) Log() Complex {
	r, theta := z.ToPolar()
	return Complex{A: math32.Log(r), B: theta}
}

// LogReal returns the logarithm of z to the real base.
func LogReal[T Scalar](z Complex, base T) Complex {
	return QuoScalar(z.Log(), math32.Log(float32(base)))
}

// LogComplex returns the logarithm of z to the complex base.
func (z Complex) LogComplex(base Complex) Complex {
	return z.Log().Quo(base.Log())
}

// Invert returns the inversion of z in the unit circle, z/|z|².
func (z Complex) Invert() Complex {
	mag := z.Magnitude()
	return QuoScalar(z, mag*mag)
}

// InvertAbout returns the inversion of z in the circle of the given center
// and radius: (z−center)·radius²/|z−center|².
func (z Complex) InvertAbout(center Complex, radius float32) Complex {
	d := z.Sub(center)
	mag := d.Magnitude()
	return QuoScalar(d.Scale(radius*radius), mag*mag)
}
