// Package maven31 is the backend for the engine generation built on the org.eclipse.aether API.
// Artifacts are resolved concurrently.
package maven31

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/transfer/internal/engine/pipeline"
	"golang.org/x/sync/errgroup"
)

var _ ports.Backend = (*Backend)(nil)

// Backend implements ports.Backend for domain.GenerationMaven31.
type Backend struct {
	*pipeline.Pipeline
}

// New creates a Backend fetching up to parallelism artifacts at once.
func New(repo ports.ArtifactRepository, logger ports.Logger, parallelism int) *Backend {
	if parallelism < 1 {
		parallelism = domain.DefaultParallelism
	}
	return &Backend{Pipeline: pipeline.New(repo, logger, concurrent{repo: repo, limit: parallelism})}
}

// Generation returns domain.GenerationMaven31.
func (b *Backend) Generation() domain.Generation {
	return domain.GenerationMaven31
}

type concurrent struct {
	repo  ports.ArtifactRepository
	limit int
}

// FetchAll writes each result into its own slot, so the order follows artifacts.
// The first failure cancels the remaining transfers.
func (c concurrent) FetchAll(
	ctx context.Context,
	req *domain.BuildingRequest,
	artifacts []domain.Artifact,
) ([]domain.ArtifactResult, error) {
	results := make([]domain.ArtifactResult, len(artifacts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for i, a := range artifacts {
		g.Go(func() error {
			res, err := c.repo.Fetch(ctx, req, a)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
