// SPDX-License-Identifier: MIT
// Package cplx_test contains shared tolerances and comparison helpers.
//
// Purpose:
//   • Compare float32 results against float64 references from math/cmplx.
//   • Keep tolerances named so every test states the precision it relies on.

package cplx_test

import (
	"fmt"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvcplx/cplx"
	"github.com/stretchr/testify/assert"
)

const (
	// tightTol covers a handful of float32 operations on unit-scale values.
	tightTol = 1e-5
	// looseTol covers chains of transcendental calls (trig, complex powers).
	looseTol = 1e-4
)

// samples is a fixed set of non-zero values spread over all four quadrants
// and both axes.
var samples = []cplx.Complex{
	cplx.New(1, 0),
	cplx.New(0, 1),
	cplx.New(-1, 0),
	cplx.New(0, -1),
	cplx.New(1, 1),
	cplx.New(2, 1),
	cplx.New(-3, 4),
	cplx.New(-0.5, -2.25),
	cplx.New(0.63, 0.5),
	cplx.New(7, -0.125),
}

// ref converts a value to the float64 complex used as the oracle.
func ref(z cplx.Complex) complex128 {
	return complex(float64(z.A), float64(z.B))
}

// fromRef narrows a float64 oracle result back into a Complex.
func fromRef(c complex128) cplx.Complex {
	return cplx.New(float32(real(c)), float32(imag(c)))
}

// assertClose fails when got differs from want by more than atol (plus a
// relative atol·|want| share) on either component.
func assertClose(t *testing.T, want, got cplx.Complex, atol float32, msgAndArgs ...any) bool {
	t.Helper()
	if cplx.Close(got, want, atol, atol) {
		return true
	}
	msg := fmt.Sprintf("values are not close: want %v (%g, %g), got %v (%g, %g)",
		want, want.A, want.B, got, got.A, got.B)
	return assert.Fail(t, msg, msgAndArgs...)
}

// assertCloseRef compares got with a math/cmplx reference.
func assertCloseRef(t *testing.T, want complex128, got cplx.Complex, atol float32, msgAndArgs ...any) bool {
	t.Helper()
	if cmplx.IsNaN(want) || cmplx.IsInf(want) {
		return assert.Fail(t, "reference is not finite", msgAndArgs...)
	}
	return assertClose(t, fromRef(want), got, atol, msgAndArgs...)
}
