// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvcplx/cplx"
)

// operands is a bit set of the operands an op reads.
type operands uint8

const (
	useZ operands = 1 << iota
	useW
	useX
)

// args are the decoded operands of a step; absent ones are zero.
type args struct {
	z, w cplx.Complex
	x    float32
	// zs, ws, xs are the operands rendered for Expr.
	zs, ws, xs string
}

// op describes one operation: its operands, its expression template and its
// evaluation. Templates use %[1]s for z, %[2]s for w and %[3]s for x.
type op struct {
	needs  operands
	expr   string
	value  func(a args) (cplx.Complex, error)
	scalar func(a args) float32
}

func pure(f func(a args) cplx.Complex) func(a args) (cplx.Complex, error) {
	return func(a args) (cplx.Complex, error) { return f(a), nil }
}

var ops = map[string]op{
	"add": {needs: useZ | useW, expr: "%[1]s + %[2]s", value: pure(func(a args) cplx.Complex { return a.z.Add(a.w) })},
	"sub": {needs: useZ | useW, expr: "%[1]s - %[2]s", value: pure(func(a args) cplx.Complex { return a.z.Sub(a.w) })},
	"mul": {needs: useZ | useW, expr: "%[1]s * %[2]s", value: pure(func(a args) cplx.Complex { return a.z.Mul(a.w) })},
	"quo": {needs: useZ | useW, expr: "%[1]s / %[2]s", value: pure(func(a args) cplx.Complex { return a.z.Quo(a.w) })},
	"mod": {needs: useZ | useW, expr: "%[1]s %% %[2]s", value: pure(func(a args) cplx.Complex { return a.z.Mod(a.w) })},

	"addr": {needs: useZ | useX, expr: "%[1]s + %[3]s", value: pure(func(a args) cplx.Complex { return cplx.AddScalar(a.z, a.x) })},
	"subr": {needs: useZ | useX, expr: "%[1]s - %[3]s", value: pure(func(a args) cplx.Complex { return cplx.SubScalar(a.z, a.x) })},
	"mulr": {needs: useZ | useX, expr: "%[1]s * %[3]s", value: pure(func(a args) cplx.Complex { return cplx.MulScalar(a.z, a.x) })},
	"quor": {needs: useZ | useX, expr: "%[1]s / %[3]s", value: pure(func(a args) cplx.Complex { return cplx.QuoScalar(a.z, a.x) })},
	"modr": {needs: useZ | useX, expr: "%[1]s %% %[3]s", value: pure(func(a args) cplx.Complex { return cplx.ModScalar(a.z, a.x) })},

	"radd": {needs: useZ | useX, expr: "%[3]s + %[1]s", value: pure(func(a args) cplx.Complex { return cplx.ScalarAdd(a.x, a.z) })},
	"rsub": {needs: useZ | useX, expr: "%[3]s - %[1]s", value: pure(func(a args) cplx.Complex { return cplx.ScalarSub(a.x, a.z) })},
	"rmul": {needs: useZ | useX, expr: "%[3]s * %[1]s", value: pure(func(a args) cplx.Complex { return cplx.ScalarMul(a.x, a.z) })},
	"rquo": {needs: useZ | useX, expr: "%[3]s / %[1]s", value: pure(func(a args) cplx.Complex { return cplx.ScalarQuo(a.x, a.z) })},
	"rmod": {needs: useZ | useX, expr: "%[3]s %% %[1]s", value: pure(func(a args) cplx.Complex { return cplx.ScalarMod(a.x, a.z) })},
	"cdiv": {needs: useZ | useX, expr: "%[3]s / %[1]s (polar)", value: pure(func(a args) cplx.Complex { return cplx.ComplexDivide(a.x, a.z) })},

	"neg":  {needs: useZ, expr: "-%[1]s", value: pure(func(a args) cplx.Complex { return a.z.Neg() })},
	"inc":  {needs: useZ, expr: "%[1]s++", value: pure(func(a args) cplx.Complex { return a.z.Inc() })},
	"dec":  {needs: useZ, expr: "%[1]s--", value: pure(func(a args) cplx.Complex { return a.z.Dec() })},
	"conj": {needs: useZ, expr: "conj%[1]s", value: pure(func(a args) cplx.Complex { return a.z.Conj() })},
	"swap": {needs: useZ, expr: "swap%[1]s", value: pure(func(a args) cplx.Complex { return a.z.Swapped() })},

	"normalize":   {needs: useZ, expr: "normalize%[1]s", value: func(a args) (cplx.Complex, error) { return a.z.Normalize() }},
	"invert":      {needs: useZ, expr: "invert%[1]s", value: pure(func(a args) cplx.Complex { return a.z.Invert() })},
	"invertabout": {needs: useZ | useW | useX, expr: "invert%[1]s about %[2]s r=%[3]s", value: pure(func(a args) cplx.Complex { return a.z.InvertAbout(a.w, a.x) })},

	"pow":  {needs: useZ | useX, expr: "%[1]s^%[3]s", value: pure(func(a args) cplx.Complex { return a.z.Pow(a.x) })},
	"powc": {needs: useZ | useW, expr: "%[1]s^%[2]s", value: pure(func(a args) cplx.Complex { return a.z.PowComplex(a.w) })},
	"rpow": {needs: useZ | useX, expr: "%[3]s^%[1]s", value: pure(func(a args) cplx.Complex { return cplx.RealPow(a.x, a.z) })},
	"exp":  {needs: useZ, expr: "e^%[1]s", value: pure(func(a args) cplx.Complex { return cplx.Exp(a.z) })},

	"log":  {needs: useZ, expr: "ln%[1]s", value: pure(func(a args) cplx.Complex { return a.z.Log() })},
	"logr": {needs: useZ | useX, expr: "log_%[3]s%[1]s", value: pure(func(a args) cplx.Complex { return cplx.LogReal(a.z, a.x) })},
	"logc": {needs: useZ | useW, expr: "log_%[2]s%[1]s", value: pure(func(a args) cplx.Complex { return a.z.LogComplex(a.w) })},

	"sin": {needs: useZ, expr: "sin%[1]s", value: pure(func(a args) cplx.Complex { return cplx.Sin(a.z) })},
	"cos": {needs: useZ, expr: "cos%[1]s", value: pure(func(a args) cplx.Complex { return cplx.Cos(a.z) })},
	"tan": {needs: useZ, expr: "tan%[1]s", value: pure(func(a args) cplx.Complex { return cplx.Tan(a.z) })},

	"magnitude": {needs: useZ, expr: "|%[1]s|", scalar: func(a args) float32 { return a.z.Magnitude() }},
	"angle":     {needs: useZ, expr: "arg%[1]s", scalar: func(a args) float32 { return a.z.Angle() }},
}

// OpNames returns the registered operation keys in sorted order.
func OpNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate runs a single step.
//
// Errors:
//   - ErrUnknownOp       - s.Op is not registered.
//   - ErrMissingOperand  - an operand the op reads is nil.
//   - cplx.ErrDegenerateNormalization - from "normalize".
//
// The returned Result always carries Name, and Expr whenever the operands
// were complete; its Err mirrors the returned error.
func Evaluate(s Step) (Result, error) {
	res := Result{Name: s.Name, Expr: s.Op}
	if res.Name == "" {
		res.Name = s.Op
	}

	o, ok := ops[s.Op]
	if !ok {
		res.Err = fmt.Errorf("step %q: %w: %q", res.Name, ErrUnknownOp, s.Op)
		return res, res.Err
	}

	a, err := decode(s, o.needs)
	if err != nil {
		res.Err = fmt.Errorf("step %q: %w", res.Name, err)
		return res, res.Err
	}
	res.Expr = fmt.Sprintf(o.expr, a.zs, a.ws, a.xs)

	if o.scalar != nil {
		res.Scalar = o.scalar(a)
		res.IsScalar = true
		return res, nil
	}
	res.Value, err = o.value(a)
	if err != nil {
		res.Err = fmt.Errorf("step %q: %w", res.Name, err)
		return res, res.Err
	}
	return res, nil
}

// Run evaluates every step of f in order. Failures are recorded per Result
// and do not stop the run.
func Run(f File) []Result {
	out := make([]Result, 0, len(f.Steps))
	for _, s := range f.Steps {
		res, _ := Evaluate(s)
		out = append(out, res)
	}
	return out
}

// decode checks that every operand in needs is present and renders them.
func decode(s Step, needs operands) (args, error) {
	var a args
	if needs&useZ != 0 {
		if s.Z == nil {
			return a, fmt.Errorf("%w: z", ErrMissingOperand)
		}
		a.z = s.Z.Complex()
		a.zs = a.z.String()
	}
	if needs&useW != 0 {
		if s.W == nil {
			return a, fmt.Errorf("%w: w", ErrMissingOperand)
		}
		a.w = s.W.Complex()
		a.ws = a.w.String()
	}
	if needs&useX != 0 {
		if s.X == nil {
			return a, fmt.Errorf("%w: x", ErrMissingOperand)
		}
		a.x = *s.X
		a.xs = formatReal(a.x)
	}
	return a, nil
}
