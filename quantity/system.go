// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/physq/catalog"
	"github.com/katalvlaran/physq/dimension"
)

// System ties a catalog.UnitSystem to a type Registry. Every Quantity
// belongs to one System. A System is safe for concurrent use; the
// quantities it creates are not.
type System struct {
	units *catalog.UnitSystem
	types *Registry
	log   *zap.Logger
}

// NewSystem builds a system and registers the built-in kinds.
func NewSystem(opts ...Option) (*System, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	units, err := catalog.NewUnitSystem(
		catalog.WithPrimitives(o.Primitives),
		catalog.WithLogger(o.Logger),
		catalog.WithRegisterer(o.Registerer),
	)
	if err != nil {
		return nil, errors.Wrap(err, "unit system")
	}
	s := &System{units: units, types: o.Registry, log: o.Logger}
	for _, k := range Kinds() {
		if !s.types.Register(Builtin(k)) {
			s.log.Debug("kind shadowed by earlier registration", zap.Stringer("kind", k))
		}
	}
	return s, nil
}

// Units returns the underlying unit system.
func (s *System) Units() *catalog.UnitSystem { return s.units }

// Registry returns the type registry.
func (s *System) Registry() *Registry { return s.types }

// Catalog returns the unit catalog of d.
func (s *System) Catalog(d dimension.Dimension) (*catalog.Catalog, error) {
	return s.units.Catalog(d)
}

// Resolve returns the registered type of d, or a Generic one.
func (s *System) Resolve(d dimension.Dimension) *Type { return s.types.Resolve(d) }

func (s *System) newOf(t *Type) (*Quantity, error) {
	if s == nil {
		return nil, errors.Wrap(ErrQuantity, "nil system")
	}
	c, err := s.units.Catalog(t.dim)
	if err != nil {
		return nil, err
	}
	return &Quantity{sys: s, typ: t, cat: c}, nil
}

// New returns a Generic quantity of dimension d with no amount.
func (s *System) New(d dimension.Dimension) (*Quantity, error) {
	return s.newOf(genericType(d))
}

// Make returns a quantity of the type registered for d with no amount.
func (s *System) Make(d dimension.Dimension) (*Quantity, error) {
	if s == nil {
		return nil, errors.Wrap(ErrQuantity, "nil system")
	}
	return s.newOf(s.Resolve(d))
}

// Parse returns a Generic quantity of dimension d read from literal.
func (s *System) Parse(d dimension.Dimension, literal string) (*Quantity, error) {
	q, err := s.New(d)
	if err != nil {
		return nil, err
	}
	if err := q.parse(literal); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseTyped is Parse for the type registered for d, so that literals in
// the type's own units, such as "20 C" for a temperature, are accepted.
func (s *System) ParseTyped(d dimension.Dimension, literal string) (*Quantity, error) {
	q, err := s.Make(d)
	if err != nil {
		return nil, err
	}
	if err := q.parse(literal); err != nil {
		return nil, err
	}
	return q, nil
}

// From returns a Generic quantity of dimension d holding the amount of
// other, which must have dimension d.
func (s *System) From(d dimension.Dimension, other *Quantity) (*Quantity, error) {
	q, err := s.New(d)
	if err != nil {
		return nil, err
	}
	if err := q.copyFrom(other); err != nil {
		return nil, err
	}
	return q, nil
}

// Of returns an empty quantity of a built-in kind. Generic is rejected
// since it has no dimension.
func (s *System) Of(k Kind) (*Quantity, error) {
	t := Builtin(k)
	if t == nil {
		return nil, errors.Wrapf(ErrQuantity, "kind %s has no fixed dimension", k)
	}
	return s.newOf(t)
}

// Convert returns a quantity of kind k holding the amount of other.
func (s *System) Convert(k Kind, other *Quantity) (*Quantity, error) {
	q, err := s.Of(k)
	if err != nil {
		return nil, err
	}
	if err := q.copyFrom(other); err != nil {
		return nil, err
	}
	return q, nil
}

// Literal returns a quantity of kind k read from literal.
func (s *System) Literal(k Kind, literal string) (*Quantity, error) {
	q, err := s.Of(k)
	if err != nil {
		return nil, err
	}
	if err := q.parse(literal); err != nil {
		return nil, err
	}
	return q, nil
}

// Scalar returns a Dimensionless quantity of value v.
func (s *System) Scalar(v float64) (*Quantity, error) {
	q, err := s.Of(Dimensionless)
	if err != nil {
		return nil, err
	}
	q.amount, q.set = v, true
	return q, nil
}

// Dimensionless, Mass, Distance, Time, Charge, Temperature, Speed and Energy
// read literal into a quantity of the kind they name.
func (s *System) Dimensionless(literal string) (*Quantity, error) { return s.Literal(Dimensionless, literal) }
func (s *System) Mass(literal string) (*Quantity, error)          { return s.Literal(Mass, literal) }
func (s *System) Distance(literal string) (*Quantity, error)      { return s.Literal(Distance, literal) }
func (s *System) Time(literal string) (*Quantity, error)          { return s.Literal(Time, literal) }
func (s *System) Charge(literal string) (*Quantity, error)        { return s.Literal(Charge, literal) }
func (s *System) Temperature(literal string) (*Quantity, error)   { return s.Literal(Temperature, literal) }
func (s *System) Speed(literal string) (*Quantity, error)         { return s.Literal(Speed, literal) }
func (s *System) Energy(literal string) (*Quantity, error)        { return s.Literal(Energy, literal) }
