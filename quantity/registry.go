// SPDX-License-Identifier: MIT

package quantity

import (
	"sync"

	"github.com/katalvlaran/physq/dimension"
)

// Registry maps dimension signatures to quantity types. The first type
// registered for a signature wins. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Register records t for its dimension unless a type is already recorded.
// It reports whether t was stored.
func (r *Registry) Register(t *Type) bool {
	if t == nil {
		return false
	}
	key := t.dim.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.types[key]; taken {
		return false
	}
	r.types[key] = t
	return true
}

// Lookup returns the type registered for d.
func (r *Registry) Lookup(d dimension.Dimension) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[d.String()]
	return t, ok
}

// Resolve returns the type registered for d, or a Generic type over d.
func (r *Registry) Resolve(d dimension.Dimension) *Type {
	if t, ok := r.Lookup(d); ok {
		return t
	}
	return genericType(d)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}
