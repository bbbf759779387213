// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Options configures a UnitSystem.
//
// Primitives – tables the system starts with (default Standard()).
// Logger     – receives debug records for builds and invalidations (default no-op).
// Registerer – where the physq_catalog_* metrics are registered (default none).
type Options struct {
	Primitives *Primitives
	Logger     *zap.Logger
	Registerer prometheus.Registerer
}

// Option represents a functional option for configuring a UnitSystem.
type Option func(*Options)

// WithPrimitives selects the initial tables. It panics on nil.
func WithPrimitives(p *Primitives) Option {
	return func(o *Options) {
		if p == nil {
			panic(ErrNilPrimitives.Error())
		}
		o.Primitives = p
	}
}

// WithLogger routes debug records to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithRegisterer registers the cache metrics with r. Several systems may
// share one registerer; they then share the counters.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = r
	}
}

// DefaultOptions returns the standard tables, a no-op logger and no metrics
// registration.
func DefaultOptions() Options {
	return Options{
		Primitives: Standard(),
		Logger:     zap.NewNop(),
	}
}
