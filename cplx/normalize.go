// SPDX-License-Identifier: MIT

package cplx

import "fmt"

const (
	opNormalize        = "Normalize"
	opNormalizeInPlace = "NormalizeInPlace"
)

// Normalize returns z/|z|, the point on the unit circle with the same angle.
// It fails with ErrDegenerateNormalization when |z| is exactly zero.
func (z Complex) Normalize() (Complex, error) {
	mag := z.Magnitude()
	if mag == 0 {
		return Complex{}, cplxErrorf(opNormalize, ErrDegenerateNormalization)
	}
	return QuoScalar(z, mag), nil
}

// NormalizeInPlace overwrites *z with z/|z|.
// It is the only mutating operation in the package; on error *z is left
// unchanged.
func NormalizeInPlace(z *Complex) error {
	mag := z.Magnitude()
	if mag == 0 {
		return cplxErrorf(opNormalizeInPlace, ErrDegenerateNormalization)
	}
	*z = QuoScalar(*z, mag)
	return nil
}

// MustNormalize is like [Complex.Normalize] but panics on a zero-magnitude value.
func (z Complex) MustNormalize() Complex {
	u, err := z.Normalize()
	if err != nil {
		panic(fmt.Sprintf("MustNormalize(%v) failed: %v", z, err))
	}
	return u
}
