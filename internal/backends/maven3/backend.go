// Package maven3 is the backend for the legacy engine generation. Artifacts are resolved
// one at a time in graph order.
package maven3

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/transfer/internal/engine/pipeline"
)

var _ ports.Backend = (*Backend)(nil)

// Backend implements ports.Backend for domain.GenerationMaven3.
type Backend struct {
	*pipeline.Pipeline
}

// New creates a Backend.
func New(repo ports.ArtifactRepository, logger ports.Logger) *Backend {
	return &Backend{Pipeline: pipeline.New(repo, logger, sequential{repo: repo})}
}

// Generation returns domain.GenerationMaven3.
func (b *Backend) Generation() domain.Generation {
	return domain.GenerationMaven3
}

type sequential struct {
	repo ports.ArtifactRepository
}

// FetchAll stops at the first failure.
func (s sequential) FetchAll(
	ctx context.Context,
	req *domain.BuildingRequest,
	artifacts []domain.Artifact,
) ([]domain.ArtifactResult, error) {
	results := make([]domain.ArtifactResult, 0, len(artifacts))
	for _, a := range artifacts {
		res, err := s.repo.Fetch(ctx, req, a)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
