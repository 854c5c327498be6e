// SPDX-License-Identifier: MIT
// Package: cplx
//
// Purpose:
//   - Single-precision scalar helpers shared by the algebra.
//   - All transcendental calls go through math32 so every intermediate stays
//     float32, the same way the components are stored.

package cplx

import (
	"math"

	"github.com/chewxy/math32"
)

// Well-known real constants narrowed to float32.
const (
	E  = float32(math.E)
	Pi = float32(math.Pi)
)

// displayScale is 10^5: String rounds each component to 5 decimal places.
const displayScale = float32(100000)

// roundDisplay rounds x half-to-even at displayScale, folding -0 into 0.
func roundDisplay(x float32) float32 {
	r := float32(math.RoundToEven(float64(x*displayScale))) / displayScale
	if r == 0 {
		return 0
	}
	return r
}

// hypot is sqrt(a²+b²) evaluated without scaling, matching |z| exactly.
func hypot(a, b float32) float32 {
	return math32.Sqrt(a*a + b*b)
}

// cosSin returns (cos t, sin t), the unit-circle point at angle t.
func cosSin(t float32) (float32, float32) {
	return math32.Cos(t), math32.Sin(t)
}
