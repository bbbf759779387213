// SPDX-License-Identifier: MIT

package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/physq/dimension"
	"github.com/katalvlaran/physq/unitexpr"
)

// UnitSystem owns a set of primitive tables and the catalogs derived from
// them. It is safe for concurrent use.
type UnitSystem struct {
	mu    sync.Mutex
	prims *Primitives
	flat  [dimension.NumBases][]Entry
	cache map[string]*Catalog

	log     *zap.Logger
	metrics *metrics
}

// NewUnitSystem validates the configured primitives and returns an empty
// system. Catalogs are built lazily.
func NewUnitSystem(opts ...Option) (*UnitSystem, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	flat, err := o.Primitives.flatten()
	if err != nil {
		return nil, err
	}

	return &UnitSystem{
		prims:   o.Primitives,
		flat:    flat,
		cache:   make(map[string]*Catalog),
		log:     o.Logger,
		metrics: newMetrics(o.Registerer),
	}, nil
}

// Primitives returns the tables currently in force.
func (s *UnitSystem) Primitives() *Primitives {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prims
}

// Use puts p in force. When p is the pointer already in use nothing
// happens; otherwise p is validated and every cached catalog is dropped.
// Tables must not be mutated while in use.
func (s *UnitSystem) Use(p *Primitives) error {
	if p == nil {
		return ErrNilPrimitives
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == s.prims {
		return nil
	}
	flat, err := p.flatten()
	if err != nil {
		return err
	}
	dropped := len(s.cache)
	s.prims, s.flat = p, flat
	s.cache = make(map[string]*Catalog)
	s.metrics.invalidations.Inc()
	s.log.Debug("catalog cache invalidated", zap.Int("dropped", dropped))
	return nil
}

// Catalog returns the catalog of d, building and caching it on first use.
func (s *UnitSystem) Catalog(d dimension.Dimension) (*Catalog, error) {
	key := d.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cache[key]; ok {
		s.metrics.hits.Inc()
		return c, nil
	}

	start := time.Now()
	c, err := build(d, s.prims, &s.flat)
	if err != nil {
		return nil, errors.Wrapf(err, "build catalog %s", key)
	}
	s.cache[key] = c
	s.metrics.builds.Inc()
	s.metrics.buildUnits.Observe(float64(c.Len()))
	s.log.Debug("catalog built",
		zap.String("dimension", key),
		zap.Int("units", c.Len()),
		zap.String("default", c.Default()),
		zap.Duration("took", time.Since(start)),
	)
	return c, nil
}

var baseSymbols = func() []string {
	out := make([]string, 0, dimension.NumBases)
	for _, b := range dimension.Bases() {
		out = append(out, b.String())
	}
	return out
}()

// build enumerates the cartesian product of tokens over the bases present
// in d, last base varying fastest. The first spelling generated wins.
func build(d dimension.Dimension, prims *Primitives, flat *[dimension.NumBases][]Entry) (*Catalog, error) {
	if d.IsDimensionless() {
		return newCatalog(d, prims, []string{unitexpr.Identity},
			map[string]float64{unitexpr.Identity: 1}, map[string]bool{unitexpr.Identity: true}), nil
	}

	expr, err := unitexpr.Compile(d.String(), baseSymbols)
	if err != nil {
		return nil, err
	}
	template := d.Template()

	var present []dimension.Base
	for _, b := range dimension.Bases() {
		if !d.Exponent(b).IsZero() {
			present = append(present, b)
		}
	}

	values := make(map[string]float64, dimension.NumBases)
	for _, sym := range baseSymbols {
		values[sym] = 1
	}
	var (
		units     []string
		factors   = make(map[string]float64)
		canonical = make(map[string]bool)
		idx     = make([]int, len(present))
		pairs   = make([]string, 0, 2*len(present))
	)
	for {
		pairs = pairs[:0]
		unit1 := true
		for i, b := range present {
			e := flat[b][idx[i]]
			pairs = append(pairs, "{"+b.String()+"}", e.Token)
			values[b.String()] = e.Factor
			unit1 = unit1 && e.Factor == 1
		}
		unit := strings.NewReplacer(pairs...).Replace(template)
		if _, dup := factors[unit]; !dup {
			f, err := unitexpr.Evaluate(expr, values, unitexpr.Float{})
			if err != nil {
				return nil, err
			}
			factors[unit] = f
			canonical[unit] = unit1
			units = append(units, unit)
		}

		i := len(present) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(flat[present[i]]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return newCatalog(d, prims, units, factors, canonical), nil
}
