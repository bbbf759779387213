// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/go-faster/errors"

	"github.com/katalvlaran/physq/catalog"
	"github.com/katalvlaran/physq/dimension"
)

// Quantity is an amount of some dimension, stored in canonical units.
// A Quantity is created by a System and is not safe for concurrent
// mutation.
type Quantity struct {
	sys    *System
	typ    *Type
	cat    *catalog.Catalog
	amount float64
	set    bool
}

func (q *Quantity) check() error {
	if q == nil || q.sys == nil {
		return errors.Wrap(ErrQuantity, "nil quantity")
	}
	return nil
}

func (q *Quantity) checkSet() error {
	if err := q.check(); err != nil {
		return err
	}
	if !q.set {
		return errors.Wrapf(ErrNoAmount, "%s", q.typ.dim)
	}
	return nil
}

// compatible reports ErrQuantity when q and o belong to different systems
// or were created under different unit tables of the same system. Their
// amounts are then in unrelated canonical units.
func compatible(q, o *Quantity) error {
	if q.sys != o.sys {
		return errors.Wrap(ErrQuantity, "quantities of different systems")
	}
	if q.cat.Primitives() != o.cat.Primitives() {
		return errors.Wrap(ErrQuantity, "quantities built from different unit tables")
	}
	return nil
}

func (q *Quantity) parse(literal string) error {
	v, err := q.cat.Parse(literal)
	if err == nil {
		q.amount, q.set = v, true
		return nil
	}
	if q.typ.lit != nil {
		if n, unit, convErr := q.typ.lit.Split(literal); convErr == nil {
			return q.Set(unit, n)
		}
	}
	return errors.Wrapf(err, "parse %s", q.typ.dim)
}

func (q *Quantity) copyFrom(other *Quantity) error {
	if err := other.check(); err != nil {
		return err
	}
	if err := compatible(q, other); err != nil {
		return err
	}
	if other.typ.dim != q.typ.dim {
		return incompatiblef("%s from %s", q.typ.dim, other.typ.dim)
	}
	q.amount, q.set = other.amount, other.set
	return nil
}

// Dimension returns the dimension of q.
func (q *Quantity) Dimension() dimension.Dimension { return q.typ.dim }

// Kind returns the kind of q's type.
func (q *Quantity) Kind() Kind { return q.typ.kind }

// Type returns q's type descriptor.
func (q *Quantity) Type() *Type { return q.typ }

// System returns the system q belongs to.
func (q *Quantity) System() *System { return q.sys }

// IsSet reports whether q holds an amount.
func (q *Quantity) IsSet() bool { return q.set }

// Units returns every unit q can be read or written in: the catalog
// spellings in generation order followed by the type's conversions.
func (q *Quantity) Units() []string {
	out := q.cat.Units()
	for _, u := range q.typ.units {
		if _, dup := q.cat.Factor(u); !dup {
			out = append(out, u)
		}
	}
	return out
}

// DefaultUnit returns the display unit of q's dimension.
func (q *Quantity) DefaultUnit() string { return q.cat.Default() }

// Clone returns an independent copy of q.
func (q *Quantity) Clone() *Quantity {
	cp := *q
	return &cp
}

// Get returns the amount of q expressed in unit.
func (q *Quantity) Get(unit string) (float64, error) {
	if err := q.checkSet(); err != nil {
		return 0, err
	}
	if c, ok := q.typ.conv[unit]; ok {
		f, ok := q.cat.Factor(c.Base)
		if !ok {
			return 0, errors.Wrapf(ErrUnknownUnit, "%q: base unit %q", unit, c.Base)
		}
		return c.FromBase(q.amount / f), nil
	}
	f, ok := q.cat.Factor(unit)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownUnit, "%q for %s", unit, q.typ.dim)
	}
	return q.amount / f, nil
}

// Set stores v, expressed in unit, as the amount of q.
func (q *Quantity) Set(unit string, v float64) error {
	if err := q.check(); err != nil {
		return err
	}
	if c, ok := q.typ.conv[unit]; ok {
		f, ok := q.cat.Factor(c.Base)
		if !ok {
			return errors.Wrapf(ErrUnknownUnit, "%q: base unit %q", unit, c.Base)
		}
		q.amount, q.set = c.ToBase(v)*f, true
		return nil
	}
	f, ok := q.cat.Factor(unit)
	if !ok {
		return errors.Wrapf(ErrUnknownUnit, "%q for %s", unit, q.typ.dim)
	}
	q.amount, q.set = v*f, true
	return nil
}

// Equal reports whether q and o have the same dimension and amount.
// Quantities of different dimensions, systems or unit tables are never
// equal.
func (q *Quantity) Equal(o *Quantity) bool {
	if q == nil || o == nil {
		return q == o
	}
	if q.sys == nil || o.sys == nil || compatible(q, o) != nil {
		return false
	}
	return q.typ.dim == o.typ.dim && q.set == o.set && q.amount == o.amount
}

// Compare returns -1, 0 or +1 as q is less than, equal to or greater than
// o. Both must be set and share a dimension.
func (q *Quantity) Compare(o *Quantity) (int, error) {
	if err := q.checkSet(); err != nil {
		return 0, err
	}
	if err := o.checkSet(); err != nil {
		return 0, err
	}
	if err := compatible(q, o); err != nil {
		return 0, err
	}
	if q.typ.dim != o.typ.dim {
		return 0, incompatiblef("compare %s with %s", q.typ.dim, o.typ.dim)
	}
	switch {
	case q.amount < o.amount:
		return -1, nil
	case q.amount > o.amount:
		return 1, nil
	}
	return 0, nil
}

func (q *Quantity) Less(o *Quantity) (bool, error) {
	c, err := q.Compare(o)
	return c < 0, err
}

func (q *Quantity) LessEqual(o *Quantity) (bool, error) {
	c, err := q.Compare(o)
	return c <= 0 && err == nil, err
}

func (q *Quantity) Greater(o *Quantity) (bool, error) {
	c, err := q.Compare(o)
	return c > 0, err
}

func (q *Quantity) GreaterEqual(o *Quantity) (bool, error) {
	c, err := q.Compare(o)
	return c >= 0 && err == nil, err
}
