// SPDX-License-Identifier: MIT

// Package scenario evaluates scripted walks through the cplx algebra.
//
// A scenario is a titled list of steps. Each step names one operation and
// its operands: complex values z and w, and a real x. Scenarios are built in
// code or loaded from TOML (default) or YAML files:
//
//	title = "tour"
//
//	[[steps]]
//	name = "euler"
//	op   = "rpow"
//	x    = 2.7182817
//	z    = { re = 0.0, im = 3.1415927 }
//
// Run evaluates every step and never stops early; a failing step carries its
// error in the Result. Evaluate handles a single step.
//
// Operations:
//
//	add sub mul quo mod            z ∘ w
//	addr subr mulr quor modr       z ∘ x
//	radd rsub rmul rquo rmod cdiv  x ∘ z (cdiv: direct polar division)
//	neg inc dec conj swap          unary on z
//	normalize invert               unary on z
//	invertabout                    z about center w, radius x
//	pow powc rpow exp              z^x, z^w, x^z, e^z
//	log logr logc                  ln z, log_x z, log_w z
//	sin cos tan                    trig on z
//	magnitude angle                real results |z|, arg z
package scenario
