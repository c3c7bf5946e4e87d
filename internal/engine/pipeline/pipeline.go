// Package pipeline implements the collect-then-fetch flow shared by the backends.
package pipeline

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/transfer/internal/engine/graph"
)

// Fetcher materializes artifacts in the local repository. Results must follow the order of artifacts.
type Fetcher interface {
	FetchAll(ctx context.Context, req *domain.BuildingRequest, artifacts []domain.Artifact) ([]domain.ArtifactResult, error)
}

// Pipeline collects graphs with graph.Collector and resolves them through a Fetcher.
// It provides every DependencyResolver and DependencyCollector operation.
type Pipeline struct {
	repo      ports.ArtifactRepository
	collector *graph.Collector
	fetcher   Fetcher
}

// New creates a Pipeline.
func New(repo ports.ArtifactRepository, logger ports.Logger, fetcher Fetcher) *Pipeline {
	return &Pipeline{
		repo:      repo,
		collector: graph.NewCollector(repo, logger),
		fetcher:   fetcher,
	}
}

// ResolveDependencies resolves coordinates as the children of a synthetic root.
func (p *Pipeline) ResolveDependencies(
	ctx context.Context,
	req *domain.BuildingRequest,
	coordinates []domain.Dependency,
	managed []domain.Dependency,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	result, err := p.collector.Collect(ctx, req, graph.SetRoot(coordinates, managed))
	if err != nil {
		return nil, err
	}
	return p.fetch(ctx, req, graph.Flatten(result.Root, filter))
}

// ResolveCoordinate resolves coordinate and its dependencies; the coordinate's own artifact comes first.
func (p *Pipeline) ResolveCoordinate(
	ctx context.Context,
	req *domain.BuildingRequest,
	coordinate *domain.DependableCoordinate,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	result, err := p.CollectCoordinate(ctx, req, coordinate)
	if err != nil {
		return nil, err
	}

	var nodes []*domain.DependencyNode
	if filter == nil || filter.Accept(result.Root, nil) {
		nodes = append(nodes, result.Root)
	}
	nodes = append(nodes, graph.Flatten(result.Root, filter)...)
	return p.fetch(ctx, req, nodes)
}

// ResolveModel resolves the dependencies of model. The model's own artifact is not resolved.
func (p *Pipeline) ResolveModel(
	ctx context.Context,
	req *domain.BuildingRequest,
	model *domain.Model,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	result, err := p.CollectModel(ctx, req, model)
	if err != nil {
		return nil, err
	}
	return p.fetch(ctx, req, graph.Flatten(result.Root, filter))
}

// CollectDependency collects the graph below root, keeping its scope and exclusions.
func (p *Pipeline) CollectDependency(
	ctx context.Context,
	req *domain.BuildingRequest,
	root *domain.Dependency,
) (*domain.CollectorResult, error) {
	r, err := graph.DependencyRoot(ctx, p.repo, req, root)
	if err != nil {
		return nil, err
	}
	return p.collector.Collect(ctx, req, r)
}

// CollectCoordinate collects the graph below root.
func (p *Pipeline) CollectCoordinate(
	ctx context.Context,
	req *domain.BuildingRequest,
	root *domain.DependableCoordinate,
) (*domain.CollectorResult, error) {
	r, err := graph.ArtifactRoot(ctx, p.repo, req, root.Artifact())
	if err != nil {
		return nil, err
	}
	return p.collector.Collect(ctx, req, r)
}

// CollectModel collects the graph of root.
func (p *Pipeline) CollectModel(
	ctx context.Context,
	req *domain.BuildingRequest,
	root *domain.Model,
) (*domain.CollectorResult, error) {
	return p.collector.Collect(ctx, req, graph.ModelRoot(root, nil))
}

// CollectProject collects the graph of the request's project.
func (p *Pipeline) CollectProject(ctx context.Context, req *domain.BuildingRequest) (*domain.CollectorResult, error) {
	if req.Project == nil {
		return nil, domain.NewInvalidArgument("project")
	}
	return p.CollectModel(ctx, req, req.Project)
}

func (p *Pipeline) fetch(
	ctx context.Context,
	req *domain.BuildingRequest,
	nodes []*domain.DependencyNode,
) ([]domain.ArtifactResult, error) {
	artifacts := make([]domain.Artifact, len(nodes))
	for i, n := range nodes {
		artifacts[i] = n.Artifact
	}
	return p.fetcher.FetchAll(ctx, req, artifacts)
}
