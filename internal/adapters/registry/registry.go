// Package registry maps engine generations to backend implementations.
package registry

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider constructs the backend for one generation.
type Provider func() (ports.Backend, error)

// Static returns a Provider for an already constructed backend.
func Static(backend ports.Backend) Provider {
	return func() (ports.Backend, error) { return backend, nil }
}

// Registry implements ports.BackendRegistry over a fixed set of providers.
// Each backend is constructed on first lookup and reused afterwards.
type Registry struct {
	providers map[domain.Generation]Provider

	mu       sync.Mutex
	backends map[domain.Generation]ports.Backend
}

// New creates a Registry. The providers map is copied.
func New(providers map[domain.Generation]Provider) *Registry {
	copied := make(map[domain.Generation]Provider, len(providers))
	for gen, p := range providers {
		if p != nil {
			copied[gen] = p
		}
	}
	return &Registry{
		providers: copied,
		backends:  make(map[domain.Generation]ports.Backend, len(copied)),
	}
}

// LookupResolver implements ports.BackendRegistry.
func (r *Registry) LookupResolver(gen domain.Generation) (ports.DependencyResolver, error) {
	backend, err := r.lookup(gen, domain.CapabilityResolver)
	if err != nil {
		return nil, err
	}
	return backend, nil
}

// LookupCollector implements ports.BackendRegistry.
func (r *Registry) LookupCollector(gen domain.Generation) (ports.DependencyCollector, error) {
	backend, err := r.lookup(gen, domain.CapabilityCollector)
	if err != nil {
		return nil, err
	}
	return backend, nil
}

// Generations returns the registered generations in sorted order.
func (r *Registry) Generations() []domain.Generation {
	out := make([]domain.Generation, 0, len(r.providers))
	for gen := range r.providers {
		out = append(out, gen)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) registered() string {
	gens := r.Generations()
	names := make([]string, len(gens))
	for i, gen := range gens {
		names[i] = gen.String()
	}
	return strings.Join(names, ",")
}

func (r *Registry) lookup(gen domain.Generation, capability domain.Capability) (ports.Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if backend, ok := r.backends[gen]; ok {
		return backend, nil
	}

	provider, ok := r.providers[gen]
	if !ok {
		err := domain.Annotate(domain.ErrBackendNotRegistered, "generation", gen.String())
		err = zerr.With(err, "capability", string(capability))
		return nil, zerr.With(err, "registered", r.registered())
	}

	backend, err := provider()
	if err != nil {
		return nil, zerr.With(domain.Caused(domain.ErrBackendConstructionFailed, err), "generation", gen.String())
	}
	if backend == nil {
		err := domain.Annotate(domain.ErrBackendConstructionFailed, "generation", gen.String())
		return nil, zerr.With(err, "capability", string(capability))
	}

	r.backends[gen] = backend
	return backend, nil
}
