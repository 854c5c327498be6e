// SPDX-License-Identifier: MIT
// Package cplx: sentinel error set.
// Normalization by a zero magnitude is the only failure the algebra reports;
// every other degenerate input propagates IEEE-754 Inf/NaN on purpose.

package cplx

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateNormalization is returned when a value of magnitude exactly
	// zero is asked to be scaled onto the unit circle.
	ErrDegenerateNormalization = errors.New("cplx: cannot normalize a zero-magnitude value")
)

// cplxErrorf tags err with the failing operation, keeping errors.Is intact.
func cplxErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
