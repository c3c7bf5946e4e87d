package ports

import "go.trai.ch/transfer/internal/core/domain"

// Backend is a resolver and collector implemented against one engine generation.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	DependencyResolver
	DependencyCollector

	// Generation returns the engine generation the backend is built against.
	Generation() domain.Generation
}

// BackendRegistry looks up backends by engine generation.
// Implementations must be safe for concurrent use.
type BackendRegistry interface {
	// LookupResolver returns the resolver registered for gen.
	LookupResolver(gen domain.Generation) (DependencyResolver, error)

	// LookupCollector returns the collector registered for gen.
	LookupCollector(gen domain.Generation) (DependencyCollector, error)
}
