// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "physq"

type metrics struct {
	builds        prometheus.Counter
	hits          prometheus.Counter
	invalidations prometheus.Counter
	buildUnits    prometheus.Histogram
}

// newMetrics creates the cache collectors and, when reg is not nil,
// registers them. Collectors already registered by another system are
// reused.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "catalog",
			Name:      "builds_total",
			Help:      "Number of unit catalogs built.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "catalog",
			Name:      "cache_hits_total",
			Help:      "Number of catalog lookups served from the cache.",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "catalog",
			Name:      "invalidations_total",
			Help:      "Number of times the catalog cache was dropped for new primitives.",
		}),
		buildUnits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "catalog",
			Name:      "build_units",
			Help:      "Number of unit spellings per built catalog.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if reg == nil {
		return m
	}
	m.builds = register(reg, m.builds)
	m.hits = register(reg, m.hits)
	m.invalidations = register(reg, m.invalidations)
	m.buildUnits = register(reg, m.buildUnits)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}
