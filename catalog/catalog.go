// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/physq/dimension"
	"github.com/katalvlaran/physq/unitexpr"
)

// Catalog is the immutable set of unit spellings of one dimension.
type Catalog struct {
	dim     dimension.Dimension
	prims   *Primitives
	units   []string
	factors map[string]float64
	def     string
	lit     *unitexpr.Literal
}

func newCatalog(d dimension.Dimension, prims *Primitives, units []string, factors map[string]float64, canonical map[string]bool) *Catalog {
	return &Catalog{
		dim:     d,
		prims:   prims,
		units:   units,
		factors: factors,
		def:     defaultUnit(units, factors, canonical),
		lit:     unitexpr.NewLiteral(factors),
	}
}

// defaultUnit picks the shortest spelling made only of factor-1 tokens,
// ties broken lexicographically. Failing that it takes the shortest
// spelling whose overall factor is exactly 1 (g·km), then the first unit.
func defaultUnit(units []string, factors map[string]float64, canonical map[string]bool) string {
	pick := func(ok func(string) bool) string {
		best := ""
		for _, u := range units {
			if !ok(u) {
				continue
			}
			if best == "" || len(u) < len(best) || (len(u) == len(best) && u < best) {
				best = u
			}
		}
		return best
	}
	if best := pick(func(u string) bool { return canonical[u] }); best != "" {
		return best
	}
	if best := pick(func(u string) bool { return factors[u] == 1 }); best != "" {
		return best
	}
	if len(units) > 0 {
		return units[0]
	}
	return ""
}

// Dimension returns the dimension the catalog describes.
func (c *Catalog) Dimension() dimension.Dimension { return c.dim }

// Primitives returns the tables the catalog was built from. Amounts read
// through catalogs with different primitives are not comparable.
func (c *Catalog) Primitives() *Primitives { return c.prims }

// Units returns every spelling in generation order.
func (c *Catalog) Units() []string { return append([]string(nil), c.units...) }

// Len returns the number of spellings.
func (c *Catalog) Len() int { return len(c.units) }

// Factor returns the factor converting unit into canonical units.
func (c *Catalog) Factor(unit string) (float64, bool) {
	f, ok := c.factors[unit]
	return f, ok
}

// Default returns the display unit.
func (c *Catalog) Default() string { return c.def }

// Parse reads a "<number> <unit>" literal and returns the amount in
// canonical units. Dimensionless catalogs accept a bare number only.
// Failures match unitexpr.ErrBadInput.
func (c *Catalog) Parse(literal string) (float64, error) {
	return c.lit.Parse(literal)
}
