// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/physq/catalog"
)

// Options configures a System.
//
// Primitives – unit tables (default catalog.Standard()).
// Logger     – debug logging for the system and its catalogs (default no-op).
// Registerer – catalog cache metrics (default none).
// Registry   – type registry to use; the built-in kinds are added to it
// without replacing earlier registrations (default a fresh registry).
type Options struct {
	Primitives *catalog.Primitives
	Logger     *zap.Logger
	Registerer prometheus.Registerer
	Registry   *Registry
}

// Option represents a functional option for configuring a System.
type Option func(*Options)

// WithPrimitives selects the unit tables. It panics on nil.
func WithPrimitives(p *catalog.Primitives) Option {
	return func(o *Options) {
		if p == nil {
			panic(catalog.ErrNilPrimitives.Error())
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

// WithRegisterer registers the catalog metrics with r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = r
	}
}

// WithRegistry makes the system resolve types through r. It panics on nil.
func WithRegistry(r *Registry) Option {
	return func(o *Options) {
		if r == nil {
			panic(ErrQuantity.Error() + ": nil registry")
		}
		o.Registry = r
	}
}

// DefaultOptions returns the standard tables, a no-op logger, no metrics
// and a fresh registry.
func DefaultOptions() Options {
	return Options{
		Primitives: catalog.Standard(),
		Logger:     zap.NewNop(),
		Registry:   NewRegistry(),
	}
}
