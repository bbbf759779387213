// SPDX-License-Identifier: MIT

package quantity

import (
	"math"

	"github.com/go-faster/errors"

	"github.com/katalvlaran/physq/dimension"
)

// result builds the quantity an operator returns: the type registered for
// d, holding amount. q must still be under the tables in force.
func (q *Quantity) result(d dimension.Dimension, amount float64) (*Quantity, error) {
	r, err := q.sys.Make(d)
	if err != nil {
		return nil, err
	}
	if err := compatible(q, r); err != nil {
		return nil, errors.Wrap(err, "unit tables changed since creation")
	}
	r.amount, r.set = amount, true
	return r, nil
}

func operands(q, o *Quantity) error {
	if err := q.checkSet(); err != nil {
		return err
	}
	if err := o.checkSet(); err != nil {
		return err
	}
	return compatible(q, o)
}

// Add returns q + o. The dimensions must match; the result has the type
// registered for that dimension, whatever the operand types.
func (q *Quantity) Add(o *Quantity) (*Quantity, error) {
	if err := operands(q, o); err != nil {
		return nil, err
	}
	d, err := q.typ.dim.Add(o.typ.dim)
	if err != nil {
		return nil, incompatiblef("%s + %s", q.typ.dim, o.typ.dim)
	}
	return q.result(d, q.amount+o.amount)
}

// Sub returns q - o under the same rules as Add.
func (q *Quantity) Sub(o *Quantity) (*Quantity, error) {
	if err := operands(q, o); err != nil {
		return nil, err
	}
	d, err := q.typ.dim.Sub(o.typ.dim)
	if err != nil {
		return nil, incompatiblef("%s - %s", q.typ.dim, o.typ.dim)
	}
	return q.result(d, q.amount-o.amount)
}

// Mul returns q * o, typed after the product dimension.
func (q *Quantity) Mul(o *Quantity) (*Quantity, error) {
	if err := operands(q, o); err != nil {
		return nil, err
	}
	d, err := q.typ.dim.TryMul(o.typ.dim)
	if err != nil {
		return nil, err
	}
	return q.result(d, q.amount*o.amount)
}

// Div returns q / o, typed after the quotient dimension.
func (q *Quantity) Div(o *Quantity) (*Quantity, error) {
	if err := operands(q, o); err != nil {
		return nil, err
	}
	d, err := q.typ.dim.TryDiv(o.typ.dim)
	if err != nil {
		return nil, err
	}
	return q.result(d, q.amount/o.amount)
}

// Pow returns q raised to exp. The exponent must be a small rational so
// that the result has a dimension (see dimension.RatFromFloat).
func (q *Quantity) Pow(exp float64) (*Quantity, error) {
	if err := q.checkSet(); err != nil {
		return nil, err
	}
	d, err := q.typ.dim.PowFloat(exp)
	if err != nil {
		return nil, err
	}
	return q.result(d, math.Pow(q.amount, exp))
}

// PowQuantity returns q raised to the amount of a dimensionless quantity.
func (q *Quantity) PowQuantity(exp *Quantity) (*Quantity, error) {
	if err := operands(q, exp); err != nil {
		return nil, err
	}
	if !exp.typ.dim.IsDimensionless() {
		return nil, errors.Wrapf(ErrQuantity, "exponent of dimension %s", exp.typ.dim)
	}
	return q.Pow(exp.amount)
}

func (q *Quantity) scalar(v float64) (*Quantity, error) {
	if err := q.check(); err != nil {
		return nil, err
	}
	return q.sys.Scalar(v)
}

// AddScalar returns q + v, with v taken as dimensionless.
func (q *Quantity) AddScalar(v float64) (*Quantity, error) {
	n, err := q.scalar(v)
	if err != nil {
		return nil, err
	}
	return q.Add(n)
}

// SubScalar returns q - v, with v taken as dimensionless.
func (q *Quantity) SubScalar(v float64) (*Quantity, error) {
	n, err := q.scalar(v)
	if err != nil {
		return nil, err
	}
	return q.Sub(n)
}

// MulScalar returns q * v.
func (q *Quantity) MulScalar(v float64) (*Quantity, error) {
	n, err := q.scalar(v)
	if err != nil {
		return nil, err
	}
	return q.Mul(n)
}

// DivScalar returns q / v.
func (q *Quantity) DivScalar(v float64) (*Quantity, error) {
	n, err := q.scalar(v)
	if err != nil {
		return nil, err
	}
	return q.Div(n)
}

// ScalarSub returns v - q, with v taken as dimensionless.
func (q *Quantity) ScalarSub(v float64) (*Quantity, error) {
	n, err := q.scalar(v)
	if err != nil {
		return nil, err
	}
	return n.Sub(q)
}

// ScalarDiv returns v / q.
func (q *Quantity) ScalarDiv(v float64) (*Quantity, error) {
	n, err := q.scalar(v)
	if err != nil {
		return nil, err
	}
	return n.Div(q)
}
