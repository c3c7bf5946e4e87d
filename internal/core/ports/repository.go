package ports

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
)

// ArtifactRepository reads project descriptors and materializes artifacts in the local repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type ArtifactRepository interface {
	// ReadDescriptor returns the project model describing artifact.
	ReadDescriptor(ctx context.Context, req *domain.BuildingRequest, artifact domain.Artifact) (*domain.Model, error)

	// ReadProject reads the project descriptor at path, merging its parent chain and
	// imported dependency management.
	ReadProject(ctx context.Context, req *domain.BuildingRequest, path string) (*domain.Model, error)

	// Fetch makes artifact available in the local repository.
	Fetch(ctx context.Context, req *domain.BuildingRequest, artifact domain.Artifact) (domain.ArtifactResult, error)
}

// ProjectReader parses project descriptors.
type ProjectReader interface {
	// Read parses the descriptor at path.
	Read(path string) (*domain.Model, error)

	// Parse parses descriptor content.
	Parse(data []byte) (*domain.Model, error)
}
