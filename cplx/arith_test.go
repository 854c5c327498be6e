// SPDX-License-Identifier: MIT
package cplx_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcplx/cplx"
	"github.com/stretchr/testify/assert"
)

// TestAddSubNeg covers the component-wise operators.
func TestAddSubNeg(t *testing.T) {
	z1, z2 := cplx.New(1, 2), cplx.New(-3, 0.5)
	assert.Equal(t, cplx.New(-2, 2.5), z1.Add(z2))
	assert.Equal(t, cplx.New(4, 1.5), z1.Sub(z2))
	assert.Equal(t, cplx.New(-1, -2), z1.Neg())
	assert.Equal(t, z1, z1.Neg().Neg())
	assert.Equal(t, cplx.New(0, 0), z1.Add(z1.Neg()))
}

// TestMul_Polar compares polar multiplication with math/cmplx.
func TestMul_Polar(t *testing.T) {
	for _, z1 := range samples {
		for _, z2 := range samples {
			assertCloseRef(t, ref(z1)*ref(z2), z1.Mul(z2), tightTol, "%v * %v", z1, z2)
		}
	}
	assertClose(t, cplx.New(-1, 0), cplx.I().Mul(cplx.I()), tightTol, "i·i")
	assertClose(t, cplx.New(0, 2), cplx.New(1, 1).Mul(cplx.New(1, 1)), tightTol, "(1+i)²")
}

// TestMulQuo_RoundTrip verifies (z1·z2)/z2 ≈ z1 for non-zero z2.
func TestMulQuo_RoundTrip(t *testing.T) {
	for _, z1 := range samples {
		for _, z2 := range samples {
			assertClose(t, z1, z1.Mul(z2).Quo(z2), tightTol, "(%v * %v) / %v", z1, z2, z2)
		}
	}
}

// TestQuo_Polar compares polar division with math/cmplx.
func TestQuo_Polar(t *testing.T) {
	assertClose(t, cplx.New(0.6, 0.2), cplx.New(1, 1).Quo(cplx.New(2, 1)), tightTol)
	for _, z1 := range samples {
		for _, z2 := range samples {
			assertCloseRef(t, ref(z1)/ref(z2), z1.Quo(z2), tightTol, "%v / %v", z1, z2)
		}
	}
}

// TestQuo_ByZeroPropagates documents that binary division is not guarded.
func TestQuo_ByZeroPropagates(t *testing.T) {
	got := cplx.New(1, 1).Quo(cplx.Complex{})
	assert.True(t, math.IsInf(float64(got.A), 1), "real part: %v", got.A)
	assert.True(t, math.IsInf(float64(got.B), 1), "imag part: %v", got.B)

	got = cplx.Complex{}.Quo(cplx.Complex{})
	assert.True(t, math.IsNaN(float64(got.A)), "0/0 real part: %v", got.A)
}

// TestMod verifies component-wise fmod semantics, including sign of dividend.
func TestMod(t *testing.T) {
	assert.Equal(t, cplx.New(2, 3), cplx.New(5, 7).Mod(cplx.New(3, 4)))
	assert.Equal(t, cplx.New(-2, 3), cplx.New(-5, 7).Mod(cplx.New(3, -4)))
	assert.Equal(t, cplx.New(1.5, 1), cplx.ModScalar(cplx.New(5.5, 7), 2))

	got := cplx.ModScalar(cplx.New(4, 5), 0)
	assert.True(t, math.IsNaN(float64(got.A)), "mod by zero is NaN")
}

// TestScalarMod_DivisorIsScalar verifies that a scalar written first still
// divides both components of z.
func TestScalarMod_DivisorIsScalar(t *testing.T) {
	assert.Equal(t, cplx.New(1.5, 1), cplx.ScalarMod(2, cplx.New(5.5, 7)))
	assert.Equal(t, cplx.New(1.5, 1), cplx.ScalarMod(int8(2), cplx.New(5.5, 7)))
	assert.Equal(t, cplx.New(4, 5), cplx.ScalarMod(7, cplx.New(4, 5)))
	for _, z := range samples {
		assert.Equal(t, cplx.ModScalar(z, 3), cplx.ScalarMod(3, z), "z=%v", z)
	}
}

// TestIncDec verifies that both components move together and that the pair
// is an exact inverse on integer-valued components.
func TestIncDec(t *testing.T) {
	z := cplx.New(1, 2)
	assert.Equal(t, cplx.New(2, 3), z.Inc())
	assert.Equal(t, cplx.New(0, 1), z.Dec())
	assert.Equal(t, z, z.Inc().Dec())
	assert.Equal(t, z, z.Dec().Inc())

	f := cplx.New(0.1, -2.7)
	assertClose(t, f, f.Inc().Dec(), tightTol)
}

type meters float64

// TestScalarMixing covers both operand orders over several numeric kinds.
func TestScalarMixing(t *testing.T) {
	z := cplx.New(1, 2)

	assert.Equal(t, cplx.New(4, 2), cplx.AddScalar(z, 3))
	assert.Equal(t, cplx.New(4, 2), cplx.ScalarAdd(int8(3), z))
	assert.Equal(t, cplx.New(2.5, 2), cplx.AddScalar(z, meters(1.5)))
	assert.Equal(t, cplx.New(-2, 2), cplx.SubScalar(z, uint16(3)))
	assert.Equal(t, cplx.New(4, -2), cplx.ScalarSub(5, z), "c − z must be (c − a, −b)")

	assert.Equal(t, cplx.New(2, 4), cplx.MulScalar(z, uint(2)))
	assert.Equal(t, cplx.New(-3, -6), cplx.ScalarMul(int64(-3), z))
	assert.Equal(t, cplx.New(0.5, 1), cplx.QuoScalar(z, 2.0))

	// Real operands agree with the lifted (c, 0) form.
	assert.Equal(t, z.Add(cplx.Real(3)), cplx.AddScalar(z, 3))
	assert.Equal(t, cplx.Real(5).Sub(z), cplx.ScalarSub(5, z))
}

// TestScalarQuo_MatchesComplexDivide verifies that c·z^(−1) and direct polar
// division of (c, 0) by z give the same quotient.
func TestScalarQuo_MatchesComplexDivide(t *testing.T) {
	assertClose(t, cplx.New(1.2, -0.6), cplx.ScalarQuo(3, cplx.New(2, 1)), tightTol)

	for _, c := range []float32{1, -2.5, 3, 10} {
		for _, z := range samples {
			viaPow := cplx.ScalarQuo(c, z)
			direct := cplx.ComplexDivide(c, z)
			assertClose(t, direct, viaPow, tightTol, "%v / %v", c, z)
			assertCloseRef(t, complex(float64(c), 0)/ref(z), direct, tightTol, "%v / %v", c, z)
		}
	}
	assertClose(t, cplx.ComplexDivide(2, cplx.I()), cplx.ScalarQuo(int32(2), cplx.I()), tightTol)
}
