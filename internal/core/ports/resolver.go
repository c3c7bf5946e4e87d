// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
)

// DependencyResolver collects dependencies and materializes their artifacts in the local repository.
//
// The returned results are ordered by the implementation; callers must preserve that order.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// ResolveDependencies resolves a set of dependencies, applying managed as dependency management.
	ResolveDependencies(
		ctx context.Context,
		req *domain.BuildingRequest,
		coordinates []domain.Dependency,
		managed []domain.Dependency,
		filter domain.Filter,
	) ([]domain.ArtifactResult, error)

	// ResolveCoordinate resolves a single coordinate and its dependencies.
	ResolveCoordinate(
		ctx context.Context,
		req *domain.BuildingRequest,
		coordinate *domain.DependableCoordinate,
		filter domain.Filter,
	) ([]domain.ArtifactResult, error)

	// ResolveModel resolves the dependencies declared by a project model.
	ResolveModel(
		ctx context.Context,
		req *domain.BuildingRequest,
		model *domain.Model,
		filter domain.Filter,
	) ([]domain.ArtifactResult, error)
}
