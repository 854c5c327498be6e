// SPDX-License-Identifier: MIT

// Package lvcplx is a small numeric toolkit built around a single-precision
// complex value type and the algebra that comes with it.
//
// 🚀 What is inside?
//
//	cplx/         - the Complex value: arithmetic, polar form, powers,
//	                logarithms, trigonometry, canonical formatting
//	scenario/     - scripted walks through the algebra, loaded from TOML/YAML
//	cmd/cplxdemo/ - CLI that prints a scenario or the built-in tour
//
// ✨ Why lvcplx?
//
//   - Value semantics – every operation returns a fresh value
//   - One derivation path – every power reduces to the real-base case
//   - Predictable text – "(a + bi)" with 5-decimal rounding and zero elision
//   - Pure Go – float32 math via math32, no cgo
//
// Quick example:
//
//	z := cplx.New(1, 1)
//	fmt.Println(z.Mul(z)) // (2i)
//
//	go get github.com/katalvlaran/lvcplx/cplx
package lvcplx
