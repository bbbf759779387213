// SPDX-License-Identifier: MIT

package quantity

import (
	"sort"

	"github.com/katalvlaran/physq/dimension"
	"github.com/katalvlaran/physq/unitexpr"
)

// Conversion defines a unit that is not a plain factor of the catalog,
// relative to a catalog unit Base. ToBase maps a value in the unit to a
// value in Base; FromBase is its inverse.
type Conversion struct {
	Base     string
	ToBase   func(float64) float64
	FromBase func(float64) float64
}

// Linear returns a Conversion where one unit equals factor Base units.
func Linear(base string, factor float64) Conversion {
	return Conversion{
		Base:     base,
		ToBase:   func(v float64) float64 { return v * factor },
		FromBase: func(v float64) float64 { return v / factor },
	}
}

// Affine returns a Conversion where a value v in the unit equals
// (v-zero)*num/den + offset Base units, e.g. Affine("K", 32, 5, 9, 273.15)
// for Fahrenheit.
func Affine(base string, zero, num, den, offset float64) Conversion {
	return Conversion{
		Base:     base,
		ToBase:   func(v float64) float64 { return (v-zero)*num/den + offset },
		FromBase: func(v float64) float64 { return (v-offset)*den/num + zero },
	}
}

// Type describes a quantity type: its kind, dimension and extra units.
// Types are immutable once created.
type Type struct {
	kind  Kind
	name  string
	dim   dimension.Dimension
	conv  map[string]Conversion
	units []string // conversion tokens, sorted
	lit   *unitexpr.Literal
}

// NewType returns a Generic-kind type named name over d, with optional
// conversions for units the catalog does not spell. The map is copied.
func NewType(name string, d dimension.Dimension, conv map[string]Conversion) *Type {
	return newType(Generic, name, d, conv)
}

func newType(k Kind, name string, d dimension.Dimension, conv map[string]Conversion) *Type {
	t := &Type{kind: k, name: name, dim: d}
	if len(conv) == 0 {
		return t
	}
	t.conv = make(map[string]Conversion, len(conv))
	table := make(map[string]float64, len(conv))
	for u, c := range conv {
		t.conv[u] = c
		t.units = append(t.units, u)
		table[u] = 1
	}
	sort.Strings(t.units)
	t.lit = unitexpr.NewLiteral(table)
	return t
}

// Units returns the sorted conversion units of t, such as "C" and "F" for
// temperatures.
func (t *Type) Units() []string { return append([]string(nil), t.units...) }

// Kind returns the kind of t.
func (t *Type) Kind() Kind { return t.kind }

// Name returns the type name used by GoString.
func (t *Type) Name() string { return t.name }

// Dimension returns the dimension of t.
func (t *Type) Dimension() dimension.Dimension { return t.dim }

// Conversion returns the extra conversion registered for unit.
func (t *Type) Conversion(unit string) (Conversion, bool) {
	c, ok := t.conv[unit]
	return c, ok
}

// genericType is the descriptor of an unregistered dimension.
func genericType(d dimension.Dimension) *Type {
	return &Type{kind: Generic, name: Generic.String(), dim: d}
}

const (
	celsiusOffset  = 273.15
	fahrenheitZero = 32
	btuInJoules    = 1055.05585
	joule          = "kgm^2/s^2"
)

var builtins = func() map[Kind]*Type {
	out := make(map[Kind]*Type, len(Kinds()))
	for _, k := range Kinds() {
		d, _ := k.Dimension()
		var conv map[string]Conversion
		switch k {
		case Temperature:
			conv = map[string]Conversion{
				"C": Affine("K", 0, 1, 1, celsiusOffset),
				"F": Affine("K", fahrenheitZero, 5, 9, celsiusOffset),
			}
		case Energy:
			conv = map[string]Conversion{
				"J":   Linear(joule, 1),
				"Btu": Linear(joule, btuInJoules),
			}
		}
		out[k] = newType(k, k.String(), d, conv)
	}
	return out
}()

// Builtin returns the shared descriptor of a built-in kind, or nil for
// Generic and unknown kinds.
func Builtin(k Kind) *Type { return builtins[k] }
