// SPDX-License-Identifier: MIT

// Package catalog derives every unit spelling of a dimension from per-base
// tables of synonyms, together with the factor converting each spelling
// into canonical units.
//
// 🚀 What is it?
//
//	A Primitives value holds one Table per base dimension (M, L, T, Q,
//	Theta). A Table is an ordered list of synonym Groups sharing a factor;
//	the group with factor 1 names the canonical unit.
//
//	A UnitSystem adopts a Primitives value and builds, on demand, one
//	Catalog per dimension: the cartesian product of one token per base,
//	substituted into the dimension's template ("{M}{L}^2/{T}^2" ->
//	"kgm^2/s^2", "gm^2/min^2", ...). Each spelling's factor comes from
//	evaluating the canonical signature over the chosen token factors.
//
// ⚙️ Caching:
//
//	Catalogs are cached by dimension signature. Use swaps the primitives
//	and drops the whole cache when a different value is supplied; handing
//	back the current pointer is a no-op. All cache access happens under a
//	single mutex.
//
// Observability is optional: WithLogger logs builds and invalidations at
// debug level, WithRegisterer exposes the physq_catalog_* metrics.
//
// Example:
//
//	us, err := catalog.NewUnitSystem()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, _ := us.Catalog(dimension.Velocity)
//	f, _ := c.Factor("mi/hr") // 0.44704
//	v, _ := c.Parse("36 km/hr") // 10
package catalog
