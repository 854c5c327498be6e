// SPDX-License-Identifier: MIT

package cplx

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// String renders z in canonical form.
//
// Both components are rounded to 5 decimal places first. Then:
//
//	(a)        if the imaginary part rounds to 0
//	(bi)       if the real part rounds to 0 and b > 0
//	(-bi)      if the real part rounds to 0 and b < 0
//	(a + bi)   if b > 0
//	(a - bi)   if b < 0, printing |b|
//
// Numbers use the shortest float32 decimal form and do not depend on locale.
// Exponent form is never used, unlike %v or %g: 1e-5 renders as (0.00001)
// and 1e6 as (1000000). Infinities render as Inf and -Inf, NaN as NaN.
func (z Complex) String() string {
	a := roundDisplay(z.A)
	b := roundDisplay(z.B)

	var sb strings.Builder
	sb.WriteByte('(')
	switch {
	case b == 0:
		sb.WriteString(formatComponent(a))
	case a == 0:
		sb.WriteString(formatComponent(b))
		sb.WriteByte('i')
	case b >= 0:
		sb.WriteString(formatComponent(a))
		sb.WriteString(" + ")
		sb.WriteString(formatComponent(b))
		sb.WriteByte('i')
	default:
		sb.WriteString(formatComponent(a))
		sb.WriteString(" - ")
		sb.WriteString(formatComponent(-b))
		sb.WriteByte('i')
	}
	sb.WriteByte(')')
	return sb.String()
}

// MarshalText implements [encoding.TextMarshaler] with the canonical form.
func (z Complex) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// formatComponent never uses exponent form. +Inf is written unsigned so the
// sign of a rendered term comes only from the " + " / " - " separators.
func formatComponent(x float32) string {
	if math32.IsInf(x, 1) {
		return "Inf"
	}
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}
