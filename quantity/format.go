// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/physq/dimension"
	"github.com/katalvlaran/physq/unitexpr"
)

const unsetAmount = "<unset>"

func withUnit(number, unit string) string {
	if unit == unitexpr.Identity {
		return number
	}
	return number + " " + unit
}

// String renders q in its default unit with six significant digits, e.g.
// "1000 m/s". Dimensionless amounts print without a unit.
func (q *Quantity) String() string {
	if q == nil || q.sys == nil {
		return "<nil>"
	}
	unit := q.cat.Default()
	if !q.set {
		return withUnit(unsetAmount, unit)
	}
	return withUnit(strconv.FormatFloat(q.amount/factorOf(q, unit), 'g', 6, 64), unit)
}

// Literal renders q in its default unit at full precision; parsing the
// result back yields the same amount.
func (q *Quantity) Literal() string {
	if q == nil || q.sys == nil || !q.set {
		return ""
	}
	unit := q.cat.Default()
	return withUnit(strconv.FormatFloat(q.amount/factorOf(q, unit), 'g', -1, 64), unit)
}

func factorOf(q *Quantity, unit string) float64 {
	if f, ok := q.cat.Factor(unit); ok {
		return f
	}
	return 1
}

// GoString shows the constructor call that recreates q:
// Speed("1000 m/s") for typed quantities, Quantity("1/T", "2 1/s") for
// generic ones.
func (q *Quantity) GoString() string {
	if q == nil || q.sys == nil {
		return "Quantity(nil)"
	}
	lit := q.Literal()
	if q.typ.kind == Generic && q.typ.name == Generic.String() {
		if !q.set {
			return fmt.Sprintf("Quantity(%q)", q.typ.dim.String())
		}
		return fmt.Sprintf("Quantity(%q, %q)", q.typ.dim.String(), lit)
	}
	if !q.set {
		return q.typ.name + "()"
	}
	return fmt.Sprintf("%s(%q)", q.typ.name, lit)
}

// Clock renders a time as "h:mm:ss", or "mm:ss" under an hour. Fractions
// of a second are truncated.
func (q *Quantity) Clock() (string, error) {
	if err := q.checkSet(); err != nil {
		return "", err
	}
	if q.typ.dim != dimension.Time {
		return "", incompatiblef("clock of %s", q.typ.dim)
	}
	secs := q.amount
	sign := ""
	if secs < 0 {
		sign, secs = "-", -secs
	}
	hours := int(secs / 3600)
	secs -= float64(hours) * 3600
	mins := int(secs / 60)
	s := int(math.Trunc(secs - float64(mins)*60))
	if hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, hours, mins, s), nil
	}
	return fmt.Sprintf("%s%02d:%02d", sign, mins, s), nil
}

// Pace returns the time a speed q takes to cover distance.
func (q *Quantity) Pace(distance *Quantity) (*Quantity, error) {
	if err := operands(q, distance); err != nil {
		return nil, err
	}
	if q.typ.dim != dimension.Velocity {
		return nil, incompatiblef("pace of %s", q.typ.dim)
	}
	if distance.typ.dim != dimension.Length {
		return nil, incompatiblef("pace over %s", distance.typ.dim)
	}
	return distance.Div(q)
}
