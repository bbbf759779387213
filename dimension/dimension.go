// SPDX-License-Identifier: MIT

package dimension

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Base identifies one of the five base dimensions.
type Base int

// Base dimensions, in canonical output order.
const (
	M Base = iota
	L
	T
	Q
	Theta
)

// NumBases is the number of base dimensions.
const NumBases = 5

var symbols = [NumBases]string{"M", "L", "T", "Q", "Theta"}

// Bases returns the base dimensions in canonical order.
func Bases() []Base { return []Base{M, L, T, Q, Theta} }

// String returns the base symbol ("M", "L", "T", "Q", "Theta").
func (b Base) String() string {
	if b < 0 || b >= NumBases {
		return "Base(" + strconv.Itoa(int(b)) + ")"
	}
	return symbols[b]
}

// BaseOf returns the base dimension spelled by symbol.
func BaseOf(symbol string) (Base, bool) {
	for i, s := range symbols {
		if s == symbol {
			return Base(i), true
		}
	}
	return 0, false
}

// Dimension returns the dimension made of b alone, e.g. L.Dimension() == Length.
func (b Base) Dimension() Dimension {
	var d Dimension
	d.exp[b] = R(1)
	return d
}

// Dimension is a vector of rational exponents over M, L, T, Q and Theta.
// The zero value is dimensionless.
type Dimension struct {
	exp [NumBases]Rat
}

// Common dimensions.
var (
	Dimensionless = Dimension{}
	Mass          = New(1, 0, 0, 0, 0)
	Length        = New(0, 1, 0, 0, 0)
	Time          = New(0, 0, 1, 0, 0)
	Charge        = New(0, 0, 0, 1, 0)
	Temperature   = New(0, 0, 0, 0, 1)
	Velocity      = New(0, 1, -1, 0, 0)
	Energy        = New(1, 2, -2, 0, 0)
)

// New returns the dimension with the given integer exponents.
func New(m, l, t, q, theta int64) Dimension {
	return Dimension{exp: [NumBases]Rat{R(m), R(l), R(t), R(q), R(theta)}}
}

// FromMap builds a dimension from exponents keyed by base symbol. Missing
// bases are zero; an unknown symbol fails with ErrDimension.
func FromMap(exps map[string]Rat) (Dimension, error) {
	var d Dimension
	for sym, r := range exps {
		b, ok := BaseOf(sym)
		if !ok {
			return Dimension{}, errors.Errorf("%w: unknown base %q", ErrDimension, sym)
		}
		d.exp[b] = r
	}
	return d, nil
}

// Exponent returns the exponent of b.
func (d Dimension) Exponent(b Base) Rat { return d.exp[b] }

// With returns a copy of d with the exponent of b replaced by r.
func (d Dimension) With(b Base, r Rat) Dimension {
	d.exp[b] = r
	return d
}

// Equal reports whether all five exponents match. It is the same as ==.
func (d Dimension) Equal(o Dimension) bool { return d == o }

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool { return d == Dimensionless }

// IsPrimitive reports whether d is dimensionless or a single base dimension
// with exponent 1.
func (d Dimension) IsPrimitive() bool {
	ones := 0
	for _, e := range d.exp {
		switch {
		case e.IsZero():
		case e.IsOne():
			ones++
		default:
			return false
		}
	}
	return ones <= 1
}

// Add checks that o equals d and returns d. Adding two quantities never
// changes their dimension.
func (d Dimension) Add(o Dimension) (Dimension, error) {
	if d != o {
		return Dimension{}, errors.Errorf("%w: %s + %s", ErrIncompatibleDimensions, d, o)
	}
	return d, nil
}

// Sub checks that o equals d and returns d.
func (d Dimension) Sub(o Dimension) (Dimension, error) {
	if d != o {
		return Dimension{}, errors.Errorf("%w: %s - %s", ErrIncompatibleDimensions, d, o)
	}
	return d, nil
}

// Mul sums exponents component-wise. It panics if an exponent overflows;
// see TryMul.
func (d Dimension) Mul(o Dimension) Dimension {
	for i := range d.exp {
		d.exp[i] = d.exp[i].Add(o.exp[i])
	}
	return d
}

// Div subtracts the exponents of o. It panics if an exponent overflows;
// see TryDiv.
func (d Dimension) Div(o Dimension) Dimension {
	for i := range d.exp {
		d.exp[i] = d.exp[i].Sub(o.exp[i])
	}
	return d
}

// TryMul is Mul returning ErrExponentOverflow instead of panicking.
func (d Dimension) TryMul(o Dimension) (Dimension, error) {
	out := d
	for i := range out.exp {
		e, ok := d.exp[i].add(o.exp[i])
		if !ok {
			return Dimension{}, errors.Errorf("%w: %s * %s", ErrExponentOverflow, d, o)
		}
		out.exp[i] = e
	}
	return out, nil
}

// TryDiv is Div returning ErrExponentOverflow instead of panicking.
func (d Dimension) TryDiv(o Dimension) (Dimension, error) {
	return d.TryMul(o.Pow(R(-1)))
}

// Inverse returns Dimensionless.Div(d).
func (d Dimension) Inverse() Dimension { return Dimensionless.Div(d) }

// Pow scales every exponent by r. It panics if an exponent overflows.
func (d Dimension) Pow(r Rat) Dimension {
	for i := range d.exp {
		d.exp[i] = d.exp[i].Mul(r)
	}
	return d
}

// PowFloat is Pow for a float exponent such as 0.5. The exponent is first
// converted with RatFromFloat. Exponents that overflow fail with
// ErrExponentOverflow.
func (d Dimension) PowFloat(exp float64) (Dimension, error) {
	r, ok := RatFromFloat(exp)
	if !ok {
		return Dimension{}, errors.Errorf("%w: %g", ErrIrrationalExponent, exp)
	}
	out := d
	for i := range out.exp {
		e, ok := d.exp[i].mul(r)
		if !ok {
			return Dimension{}, errors.Errorf("%w: (%s)^%s", ErrExponentOverflow, d, r)
		}
		out.exp[i] = e
	}
	return out, nil
}

// String returns the canonical signature, e.g. "ML^2/T^2".
func (d Dimension) String() string { return d.format("", "") }

// Template returns the canonical signature with every base symbol wrapped
// in braces, e.g. "{M}{L}^2/{T}^2", ready for unit substitution.
func (d Dimension) Template() string { return d.format("{", "}") }

// GoString returns "Dimension(M=1, L=2, T=-2, Q=0, Theta=0)".
func (d Dimension) GoString() string {
	var sb strings.Builder
	sb.WriteString("Dimension(")
	for i, e := range d.exp {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(symbols[i])
		sb.WriteByte('=')
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (d Dimension) format(lb, rb string) string {
	var num, den strings.Builder
	for i, e := range d.exp {
		var sb *strings.Builder
		switch e.Sign() {
		case 0:
			continue
		case 1:
			sb = &num
		default:
			sb = &den
			e = e.Neg()
		}
		sb.WriteString(lb)
		sb.WriteString(symbols[i])
		sb.WriteString(rb)
		if !e.IsOne() {
			sb.WriteByte('^')
			sb.WriteString(e.String())
		}
	}
	out := num.String()
	if out == "" {
		out = "1"
	}
	if den.Len() > 0 {
		out += "/" + den.String()
	}
	return out
}
