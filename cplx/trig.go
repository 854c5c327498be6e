// SPDX-License-Identifier: MIT

package cplx

// Sin returns sin(z) = −i/2·(e^(iz) − e^(−iz)).
func Sin(z Complex) Complex {
	iz := z.TimesI()
	d := Exp(iz).Sub(Exp(iz.Neg()))
	return d.TimesI().Neg().Scale(0.5)
}

// Cos returns cos(z) = 1/2·(e^(iz) + e^(−iz)).
func Cos(z Complex) Complex {
	iz := z.TimesI()
	return Exp(iz).Add(Exp(iz.Neg())).Scale(0.5)
}

// Tan returns sin(z)/cos(z), divided in polar form.
func Tan(z Complex) Complex {
	return Sin(z).Quo(Cos(z))
}
