// SPDX-License-Identifier: MIT

package dimension

import "github.com/katalvlaran/physq/unitexpr"

// baseTable maps every base symbol to its unit dimension.
var baseTable = map[string]Dimension{
	"M":     M.Dimension(),
	"L":     L.Dimension(),
	"T":     T.Dimension(),
	"Q":     Q.Dimension(),
	"Theta": Theta.Dimension(),
}

// Algebra evaluates unit expressions whose values are dimensions.
type Algebra struct{}

func (Algebra) Identity() Dimension          { return Dimensionless }
func (Algebra) Mul(a, b Dimension) Dimension { return a.Mul(b) }
func (Algebra) Div(a, b Dimension) Dimension { return a.Div(b) }

func (Algebra) Pow(a Dimension, exp float64) (Dimension, error) {
	return a.PowFloat(exp)
}

// Parse reads a dimension signature such as "L/T", "ML^2/T^2", "1/T" or
// "(L/T)^2". It accepts everything String produces.
func Parse(s string) (Dimension, error) {
	d, err := unitexpr.Eval(s, baseTable, Algebra{})
	if err != nil {
		return Dimension{}, &ParseError{Input: s, Err: err}
	}
	return d, nil
}

// MustParse is Parse for signatures known to be valid; it panics otherwise.
func MustParse(s string) Dimension {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
