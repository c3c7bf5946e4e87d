package ports

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
)

// DependencyCollector builds dependency graphs without downloading artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type DependencyCollector interface {
	// CollectDependency collects the graph below a single dependency.
	CollectDependency(
		ctx context.Context,
		req *domain.BuildingRequest,
		root *domain.Dependency,
	) (*domain.CollectorResult, error)

	// CollectCoordinate collects the graph below a coordinate.
	CollectCoordinate(
		ctx context.Context,
		req *domain.BuildingRequest,
		root *domain.DependableCoordinate,
	) (*domain.CollectorResult, error)

	// CollectModel collects the graph of a project model.
	CollectModel(ctx context.Context, req *domain.BuildingRequest, root *domain.Model) (*domain.CollectorResult, error)

	// CollectProject collects the graph of the request's project.
	CollectProject(ctx context.Context, req *domain.BuildingRequest) (*domain.CollectorResult, error)
}
