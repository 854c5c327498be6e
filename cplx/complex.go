// SPDX-License-Identifier: MIT

package cplx

import "github.com/chewxy/math32"

// Complex is a point in the real×imaginary plane.
// The zero value is the origin (0, 0).
//
// Fields:
//   - A - real part (sometimes written x).
//   - B - imaginary part (sometimes written y).
//
// Complex is a plain value: copies are independent and no method mutates its
// receiver. It is comparable with == (bitwise on both components).
type Complex struct {
	A float32
	B float32
}

// New returns the value a + bi.
func New(a, b float32) Complex {
	return Complex{A: a, B: b}
}

// Real returns the real number c lifted into the plane as (c, 0).
func Real[T Scalar](c T) Complex {
	return Complex{A: float32(c)}
}

// I returns the imaginary unit (0, 1).
func I() Complex {
	return Complex{A: 0, B: 1}
}

// FromAngle returns the unit-magnitude value cos(t) + i·sin(t).
func FromAngle(t float32) Complex {
	c, s := cosSin(t)
	return Complex{A: c, B: s}
}

// FromPolar reconstructs the Cartesian value r·cos(θ) + i·r·sin(θ).
func FromPolar(r, theta float32) Complex {
	c, s := cosSin(theta)
	return Complex{A: r * c, B: r * s}
}

// Real returns the real part.
func (z Complex) Real() float32 { return z.A }

// Imag returns the imaginary part.
func (z Complex) Imag() float32 { return z.B }

// Magnitude returns the distance from the origin, sqrt(a²+b²).
func (z Complex) Magnitude() float32 {
	return hypot(z.A, z.B)
}

// Angle returns atan2(b, a), the argument of z in (−π, π].
// The origin has angle 0.
func (z Complex) Angle() float32 {
	return math32.Atan2(z.B, z.A)
}

// ToPolar returns (r, θ) = (Magnitude, Angle).
func (z Complex) ToPolar() (r, theta float32) {
	return z.Magnitude(), z.Angle()
}

// Conj returns the conjugate a − bi.
func (z Complex) Conj() Complex {
	return Complex{A: z.A, B: -z.B}
}

// Swapped returns b + ai, the value with both slots exchanged.
func (z Complex) Swapped() Complex {
	return Complex{A: z.B, B: z.A}
}

// TimesI returns i·z computed as z.Conj().Swapped():
// i·(x + yi) = −y + xi.
func (z Complex) TimesI() Complex {
	return z.Conj().Swapped()
}

// IsZero reports whether z is exactly the origin.
func (z Complex) IsZero() bool {
	return z.A == 0 && z.B == 0
}

// Close reports whether z and w agree component-wise within
// |z−w| ≤ atol + rtol·|w|. NaN components never compare close.
func Close(z, w Complex, rtol, atol float32) bool {
	return closeTo(z.A, w.A, rtol, atol) && closeTo(z.B, w.B, rtol, atol)
}

func closeTo(x, y, rtol, atol float32) bool {
	return math32.Abs(x-y) <= atol+rtol*math32.Abs(y)
}
