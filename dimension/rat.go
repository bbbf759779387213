// SPDX-License-Identifier: MIT

package dimension

import (
	"math"
	"strconv"

	"github.com/go-faster/errors"
)

const (
	// MaxDenominator bounds the denominators RatFromFloat will produce.
	MaxDenominator = 1000

	// RatTolerance is the largest relative error RatFromFloat accepts.
	RatTolerance = 1e-9

	panicZeroDenominator = "dimension: Frac: zero denominator"
)

// Rat is a normalized rational exponent. The zero value is 0.
type Rat struct {
	n   int64
	dm1 int64 // denominator minus one, so that Rat{} == R(0)
}

// R returns the integer n as a Rat.
func R(n int64) Rat { return Rat{n: n} }

// Frac returns n/d in lowest terms. It panics if d is zero or either
// argument is math.MinInt64.
func Frac(n, d int64) Rat {
	if d == 0 {
		panic(panicZeroDenominator)
	}
	if n == math.MinInt64 || d == math.MinInt64 {
		panic(errors.Wrapf(ErrExponentOverflow, "%d/%d", n, d))
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs64(n), d)

	return Rat{n: n / g, dm1: d/g - 1}
}

// RatFromFloat returns the rational closest to f with a denominator of at
// most MaxDenominator, using continued fractions. ok is false when no such
// rational lies within RatTolerance of f.
func RatFromFloat(f float64) (r Rat, ok bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return Rat{}, false
	}
	if f == math.Trunc(f) {
		return R(int64(f)), true
	}
	neg := f < 0
	x := math.Abs(f)
	target := x
	tol := RatTolerance * math.Max(1, x)

	// convergents h/k
	h0, h1 := 0.0, 1.0
	k0, k1 := 1.0, 0.0
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > MaxDenominator {
			break
		}
		h0, h1, k0, k1 = h1, h2, k1, k2
		if math.Abs(target-h1/k1) <= tol {
			break
		}
		frac := x - a
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 || math.Abs(target-h1/k1) > tol {
		return Rat{}, false
	}
	n := int64(h1)
	if neg {
		n = -n
	}

	return Frac(n, int64(k1)), true
}

// Num returns the numerator.
func (r Rat) Num() int64 { return r.n }

// Den returns the (positive) denominator.
func (r Rat) Den() int64 { return r.dm1 + 1 }

// Add, Sub and Mul panic with an error matching ErrExponentOverflow when
// the result does not fit in int64; Dimension.PowFloat, TryMul and TryDiv
// report it as an error instead.
func (r Rat) Add(o Rat) Rat {
	s, ok := r.add(o)
	if !ok {
		panic(errors.Wrapf(ErrExponentOverflow, "%s + %s", r, o))
	}
	return s
}

func (r Rat) Sub(o Rat) Rat { return r.Add(o.Neg()) }

func (r Rat) Mul(o Rat) Rat {
	p, ok := r.mul(o)
	if !ok {
		panic(errors.Wrapf(ErrExponentOverflow, "%s * %s", r, o))
	}
	return p
}

func (r Rat) Neg() Rat { return Rat{n: -r.n, dm1: r.dm1} }

func (r Rat) add(o Rat) (Rat, bool) {
	g := gcd(r.Den(), o.Den())
	a, ok1 := mulInt(r.n, o.Den()/g)
	b, ok2 := mulInt(o.n, r.Den()/g)
	n, ok3 := addInt(a, b)
	d, ok4 := mulInt(r.Den()/g, o.Den())
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Rat{}, false
	}
	return Frac(n, d), true
}

func (r Rat) mul(o Rat) (Rat, bool) {
	g1 := gcd(abs64(r.n), o.Den())
	g2 := gcd(abs64(o.n), r.Den())
	n, ok1 := mulInt(r.n/g1, o.n/g2)
	d, ok2 := mulInt(r.Den()/g2, o.Den()/g1)
	if !ok1 || !ok2 {
		return Rat{}, false
	}
	return Frac(n, d), true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || c == math.MinInt64 {
		return 0, false
	}
	return c, true
}

func addInt(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) || c == math.MinInt64 {
		return 0, false
	}
	return c, true
}

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int {
	switch {
	case r.n < 0:
		return -1
	case r.n > 0:
		return 1
	}
	return 0
}

func (r Rat) IsZero() bool { return r.n == 0 }
func (r Rat) IsOne() bool  { return r.n == 1 && r.dm1 == 0 }
func (r Rat) IsInt() bool  { return r.dm1 == 0 }

// Float64 returns the nearest float64.
func (r Rat) Float64() float64 { return float64(r.n) / float64(r.Den()) }

// String renders integers as integers and everything else as the shortest
// decimal that reads back to the same float ("0.5", "0.3333333333333333").
func (r Rat) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.n, 10)
	}
	return strconv.FormatFloat(r.Float64(), 'f', -1, 64)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
