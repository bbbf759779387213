// SPDX-License-Identifier: MIT

package catalog_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/physq/catalog"
	"github.com/katalvlaran/physq/dimension"
	"github.com/katalvlaran/physq/unitexpr"
)

// small is a reduced table set that keeps catalog sizes easy to count.
func small() *catalog.Primitives {
	return &catalog.Primitives{Tables: [dimension.NumBases]catalog.Table{
		dimension.M: {
			{Tokens: []string{"kg", "kilogram"}, Factor: 1},
			{Tokens: []string{"g", "gr", "gram"}, Factor: 0.001},
		},
		dimension.L: {
			{Tokens: []string{"m", "meter"}, Factor: 1},
			{Tokens: []string{"km"}, Factor: 1000},
		},
		dimension.T: {
			{Tokens: []string{"s"}, Factor: 1},
			{Tokens: []string{"min", "minute"}, Factor: 60},
		},
		dimension.Q:     {{Tokens: []string{"C"}, Factor: 1}},
		dimension.Theta: {{Tokens: []string{"K"}, Factor: 1}},
	}}
}

func newSystem(t *testing.T, opts ...catalog.Option) *catalog.UnitSystem {
	t.Helper()
	us, err := catalog.NewUnitSystem(opts...)
	require.NoError(t, err)
	return us
}

//----------------------------------------------------------------------------//
// Building
//----------------------------------------------------------------------------//

func TestCatalog_Velocity(t *testing.T) {
	us := newSystem(t)
	c, err := us.Catalog(dimension.Velocity)
	require.NoError(t, err)

	assert.Equal(t, dimension.Velocity, c.Dimension())
	assert.Equal(t, 10*13, c.Len())
	assert.Equal(t, "m/s", c.Default())
	assert.Equal(t, []string{"m/s", "m/sec", "m/secs"}, c.Units()[:3])

	f, ok := c.Factor("mi/hr")
	require.True(t, ok)
	assert.InDelta(t, 0.44704, f, 1e-12)

	f, ok = c.Factor("kilometers/hours")
	require.True(t, ok)
	assert.InDelta(t, 1000.0/3600, f, 1e-12)

	_, ok = c.Factor("m/s^2")
	assert.False(t, ok)
}

func TestCatalog_SizeIsProductOfPresentBases(t *testing.T) {
	us := newSystem(t, catalog.WithPrimitives(small()))
	d := dimension.New(1, -2, 4, 0, -1)
	c, err := us.Catalog(d)
	require.NoError(t, err)
	assert.Equal(t, 5*3*3*1, c.Len())
	assert.Equal(t, "kgs^4/m^2K", c.Default())
}

func TestCatalog_Table(t *testing.T) {
	us := newSystem(t, catalog.WithPrimitives(small()))
	d, err := dimension.Parse("Q/TTheta^2")
	require.NoError(t, err)
	c, err := us.Catalog(d)
	require.NoError(t, err)

	assert.Equal(t, []string{"C/sK^2", "C/minK^2", "C/minuteK^2"}, c.Units())
	want := map[string]float64{"C/sK^2": 1, "C/minK^2": 1.0 / 60, "C/minuteK^2": 1.0 / 60}
	for u, f := range want {
		got, ok := c.Factor(u)
		require.True(t, ok, u)
		assert.InDelta(t, f, got, 1e-15, u)
	}

	v, err := c.Parse("2.4e-2 C/minK^2")
	require.NoError(t, err)
	assert.InDelta(t, 4e-4, v, 1e-15)

	_, err = c.Parse("60 C/min K^2")
	assert.ErrorIs(t, err, unitexpr.ErrBadInput)
}

func TestCatalog_FractionalExponent(t *testing.T) {
	us := newSystem(t, catalog.WithPrimitives(small()))
	d, err := dimension.Length.PowFloat(0.5)
	require.NoError(t, err)
	c, err := us.Catalog(d)
	require.NoError(t, err)

	assert.Equal(t, []string{"m^0.5", "meter^0.5", "km^0.5"}, c.Units())
	f, ok := c.Factor("km^0.5")
	require.True(t, ok)
	assert.InDelta(t, 31.6227766, f, 1e-6)
}

func TestCatalog_FirstSpellingWins(t *testing.T) {
	p := &catalog.Primitives{Tables: [dimension.NumBases]catalog.Table{
		dimension.M: {
			{Tokens: []string{"x"}, Factor: 1},
			{Tokens: []string{"xy"}, Factor: 10},
		},
		dimension.L: {
			{Tokens: []string{"yz"}, Factor: 1},
			{Tokens: []string{"z"}, Factor: 100},
		},
		dimension.T:     {{Tokens: []string{"s"}, Factor: 1}},
		dimension.Q:     {{Tokens: []string{"C"}, Factor: 1}},
		dimension.Theta: {{Tokens: []string{"K"}, Factor: 1}},
	}}
	us := newSystem(t, catalog.WithPrimitives(p))
	c, err := us.Catalog(dimension.New(1, 1, 0, 0, 0))
	require.NoError(t, err)

	// "x"+"yz" and "xy"+"z" both spell "xyz"; the first one is kept.
	assert.Equal(t, []string{"xyz", "xz", "xyyz"}, c.Units())
	f, _ := c.Factor("xyz")
	assert.Equal(t, 1.0, f)
}

func TestCatalog_Dimensionless(t *testing.T) {
	us := newSystem(t)
	c, err := us.Catalog(dimension.Dimensionless)
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, c.Units())
	assert.Equal(t, "1", c.Default())

	v, err := c.Parse("3.5")
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	for _, bad := range []string{"3 1", "3 m", "", "x"} {
		_, err = c.Parse(bad)
		assert.ErrorIs(t, err, unitexpr.ErrBadInput, bad)
	}
}

func TestCatalog_DefaultUnits(t *testing.T) {
	us := newSystem(t)
	cases := map[string]string{
		"M":        "kg",
		"L":        "m",
		"T":        "s",
		"Theta":    "K",
		"1/T":      "1/s",
		"ML^2/T^2": "kgm^2/s^2",
		"L/MT^2":   "m/kgs^2",
		"Q/L^3":    "C/m^3",
	}
	for sig, want := range cases {
		c, err := us.Catalog(dimension.MustParse(sig))
		require.NoError(t, err, sig)
		assert.Equal(t, want, c.Default(), sig)
	}
}

func TestCatalog_DefaultPrefersUnitTokens(t *testing.T) {
	us := newSystem(t)
	c, err := us.Catalog(dimension.New(1, 1, 1, 1, 1))
	require.NoError(t, err)
	// "gkmsCK" also has factor 1 and sorts first.
	f, ok := c.Factor("gkmsCK")
	require.True(t, ok)
	assert.Equal(t, 1.0, f)
	assert.Equal(t, "kgmsCK", c.Default())

	p := &catalog.Primitives{Tables: [dimension.NumBases]catalog.Table{
		dimension.M: {
			{Tokens: []string{"mg"}, Factor: 1e-6},
			{Tokens: []string{"g"}, Factor: 0.001},
		},
		dimension.L:     {{Tokens: []string{"km"}, Factor: 1000}},
		dimension.T:     {{Tokens: []string{"s"}, Factor: 1}},
		dimension.Q:     {{Tokens: []string{"C"}, Factor: 1}},
		dimension.Theta: {{Tokens: []string{"K"}, Factor: 1}},
	}}
	us = newSystem(t, catalog.WithPrimitives(p))
	c, err = us.Catalog(dimension.New(1, 1, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"mgkm", "gkm"}, c.Units())
	assert.Equal(t, "gkm", c.Default())

	c, err = us.Catalog(dimension.Mass)
	require.NoError(t, err)
	assert.Equal(t, "mg", c.Default())
}

func TestCatalog_UnitsIsACopy(t *testing.T) {
	us := newSystem(t)
	c, err := us.Catalog(dimension.Mass)
	require.NoError(t, err)
	units := c.Units()
	units[0] = "changed"
	assert.Equal(t, "kg", c.Units()[0])
}

//----------------------------------------------------------------------------//
// Cache
//----------------------------------------------------------------------------//

func TestUnitSystem_CacheAndInvalidation(t *testing.T) {
	reg := prometheus.NewRegistry()
	us := newSystem(t, catalog.WithRegisterer(reg))

	c1, err := us.Catalog(dimension.Velocity)
	require.NoError(t, err)
	c2, err := us.Catalog(dimension.Velocity)
	require.NoError(t, err)
	assert.Same(t, c1, c2, "second lookup is served from the cache")

	// handing back the tables in force keeps the cache
	require.NoError(t, us.Use(us.Primitives()))
	c3, err := us.Catalog(dimension.Velocity)
	require.NoError(t, err)
	assert.Same(t, c1, c3)

	// a different tables value drops every catalog
	require.NoError(t, us.Use(catalog.Standard()))
	c4, err := us.Catalog(dimension.Velocity)
	require.NoError(t, err)
	assert.NotSame(t, c1, c4)
	assert.Equal(t, c1.Units(), c4.Units())
	assert.Same(t, us.Primitives(), c4.Primitives())
	assert.NotSame(t, c1.Primitives(), c4.Primitives())

	expected := `
# HELP physq_catalog_builds_total Number of unit catalogs built.
# TYPE physq_catalog_builds_total counter
physq_catalog_builds_total 2
# HELP physq_catalog_cache_hits_total Number of catalog lookups served from the cache.
# TYPE physq_catalog_cache_hits_total counter
physq_catalog_cache_hits_total 2
# HELP physq_catalog_invalidations_total Number of times the catalog cache was dropped for new primitives.
# TYPE physq_catalog_invalidations_total counter
physq_catalog_invalidations_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"physq_catalog_builds_total",
		"physq_catalog_cache_hits_total",
		"physq_catalog_invalidations_total",
	))
	n, err := testutil.GatherAndCount(reg, "physq_catalog_build_units")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUnitSystem_SharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := newSystem(t, catalog.WithRegisterer(reg))
	b := newSystem(t, catalog.WithRegisterer(reg))

	_, err := a.Catalog(dimension.Mass)
	require.NoError(t, err)
	_, err = b.Catalog(dimension.Mass)
	require.NoError(t, err)

	expected := `
# HELP physq_catalog_builds_total Number of unit catalogs built.
# TYPE physq_catalog_builds_total counter
physq_catalog_builds_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "physq_catalog_builds_total"))
}

func TestUnitSystem_Use_Errors(t *testing.T) {
	us := newSystem(t)
	assert.ErrorIs(t, us.Use(nil), catalog.ErrNilPrimitives)

	before := us.Primitives()
	bad := catalog.Standard()
	bad.Tables[dimension.Q] = append(bad.Tables[dimension.Q], catalog.Group{Tokens: []string{"m"}, Factor: 2})
	assert.ErrorIs(t, us.Use(bad), catalog.ErrBadUnitDictionary)
	assert.Same(t, before, us.Primitives(), "rejected tables are not adopted")
}

func TestUnitSystem_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	us := newSystem(t, catalog.WithLogger(zap.New(core)))

	_, err := us.Catalog(dimension.Energy)
	require.NoError(t, err)
	_, err = us.Catalog(dimension.Energy)
	require.NoError(t, err)
	require.NoError(t, us.Use(catalog.Standard()))

	built := logs.FilterMessage("catalog built").All()
	require.Len(t, built, 1)
	assert.Equal(t, "ML^2/T^2", built[0].ContextMap()["dimension"])
	assert.Equal(t, "kgm^2/s^2", built[0].ContextMap()["default"])

	dropped := logs.FilterMessage("catalog cache invalidated").All()
	require.Len(t, dropped, 1)
	assert.EqualValues(t, 1, dropped[0].ContextMap()["dropped"])
}

func TestUnitSystem_Concurrent(t *testing.T) {
	us := newSystem(t)
	dims := []dimension.Dimension{dimension.Velocity, dimension.Energy, dimension.Mass}

	const workers = 16
	got := make([][]*catalog.Catalog, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, d := range dims {
				c, err := us.Catalog(d)
				if err != nil {
					return
				}
				got[w] = append(got[w], c)
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		require.Len(t, got[w], len(dims))
		for i := range dims {
			assert.Same(t, got[0][i], got[w][i])
		}
	}
}

func TestWithPrimitives_NilPanics(t *testing.T) {
	assert.Panics(t, func() { catalog.WithPrimitives(nil)(&catalog.Options{}) })
}
