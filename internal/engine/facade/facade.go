// Package facade selects the backend for the active engine generation and forwards
// resolution and collection requests to it.
package facade

import (
	"context"
	"time"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
)

// Facade implements ports.DependencyResolver and ports.DependencyCollector.
// It holds no per-call state and is safe for concurrent use.
type Facade struct {
	detector ports.GenerationDetector
	registry ports.BackendRegistry
	tracer   ports.Tracer
	metrics  ports.Metrics
}

var (
	_ ports.DependencyResolver  = (*Facade)(nil)
	_ ports.DependencyCollector = (*Facade)(nil)
)

// New creates a Facade with the given dependencies. A nil tracer or metrics disables
// tracing or call recording.
func New(
	detector ports.GenerationDetector,
	registry ports.BackendRegistry,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Facade {
	if tracer == nil {
		tracer = disabledTracer{}
	}
	if metrics == nil {
		metrics = disabledMetrics{}
	}
	return &Facade{
		detector: detector,
		registry: registry,
		tracer:   tracer,
		metrics:  metrics,
	}
}

// ResolveDependencies implements ports.DependencyResolver.
func (f *Facade) ResolveDependencies(
	ctx context.Context,
	req *domain.BuildingRequest,
	coordinates []domain.Dependency,
	managed []domain.Dependency,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	return resolve(ctx, f, "ResolveDependencies", validate(req, true, filter),
		func(ctx context.Context, r ports.DependencyResolver) ([]domain.ArtifactResult, error) {
			return r.ResolveDependencies(ctx, req, coordinates, managed, filter)
		})
}

// ResolveCoordinate implements ports.DependencyResolver.
func (f *Facade) ResolveCoordinate(
	ctx context.Context,
	req *domain.BuildingRequest,
	coordinate *domain.DependableCoordinate,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	return resolve(ctx, f, "ResolveCoordinate", validateRoot(req, coordinate != nil, "coordinate", filter, true),
		func(ctx context.Context, r ports.DependencyResolver) ([]domain.ArtifactResult, error) {
			return r.ResolveCoordinate(ctx, req, coordinate, filter)
		})
}

// ResolveModel implements ports.DependencyResolver.
func (f *Facade) ResolveModel(
	ctx context.Context,
	req *domain.BuildingRequest,
	model *domain.Model,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	return resolve(ctx, f, "ResolveModel", validateRoot(req, model != nil, "model", filter, true),
		func(ctx context.Context, r ports.DependencyResolver) ([]domain.ArtifactResult, error) {
			return r.ResolveModel(ctx, req, model, filter)
		})
}

// CollectDependency implements ports.DependencyCollector.
func (f *Facade) CollectDependency(
	ctx context.Context,
	req *domain.BuildingRequest,
	root *domain.Dependency,
) (*domain.CollectorResult, error) {
	return collect(ctx, f, "CollectDependency", validateRoot(req, root != nil, "coordinate", nil, false),
		func(ctx context.Context, c ports.DependencyCollector) (*domain.CollectorResult, error) {
			return c.CollectDependency(ctx, req, root)
		})
}

// CollectCoordinate implements ports.DependencyCollector.
func (f *Facade) CollectCoordinate(
	ctx context.Context,
	req *domain.BuildingRequest,
	root *domain.DependableCoordinate,
) (*domain.CollectorResult, error) {
	return collect(ctx, f, "CollectCoordinate", validateRoot(req, root != nil, "coordinate", nil, false),
		func(ctx context.Context, c ports.DependencyCollector) (*domain.CollectorResult, error) {
			return c.CollectCoordinate(ctx, req, root)
		})
}

// CollectModel implements ports.DependencyCollector.
func (f *Facade) CollectModel(
	ctx context.Context,
	req *domain.BuildingRequest,
	root *domain.Model,
) (*domain.CollectorResult, error) {
	return collect(ctx, f, "CollectModel", validateRoot(req, root != nil, "model", nil, false),
		func(ctx context.Context, c ports.DependencyCollector) (*domain.CollectorResult, error) {
			return c.CollectModel(ctx, req, root)
		})
}

// CollectProject implements ports.DependencyCollector.
func (f *Facade) CollectProject(
	ctx context.Context,
	req *domain.BuildingRequest,
) (*domain.CollectorResult, error) {
	return collect(ctx, f, "CollectProject", validateRoot(req, req != nil && req.Project != nil, "project", nil, false),
		func(ctx context.Context, c ports.DependencyCollector) (*domain.CollectorResult, error) {
			return c.CollectProject(ctx, req)
		})
}

func resolve[T any](
	ctx context.Context,
	f *Facade,
	op string,
	invalid error,
	run func(context.Context, ports.DependencyResolver) (T, error),
) (T, error) {
	return delegate(ctx, f, domain.CapabilityResolver, op, invalid,
		f.registry.LookupResolver, domain.NewDependencyResolverError, run)
}

func collect[T any](
	ctx context.Context,
	f *Facade,
	op string,
	invalid error,
	run func(context.Context, ports.DependencyCollector) (T, error),
) (T, error) {
	return delegate(ctx, f, domain.CapabilityCollector, op, invalid,
		f.registry.LookupCollector, domain.NewDependencyCollectorError, run)
}

// delegate runs validate, detect, lookup and forward in order. Backend results and errors
// are returned as they are.
func delegate[B, T any](
	ctx context.Context,
	f *Facade,
	capability domain.Capability,
	op string,
	invalid error,
	lookup func(domain.Generation) (B, error),
	unavailable func(error) error,
	run func(context.Context, B) (T, error),
) (T, error) {
	var zero T

	ctx, span := f.tracer.Start(ctx, "facade."+op)
	defer span.End()
	span.SetAttribute("capability", string(capability))

	obs := ports.CallObservation{Capability: capability, Operation: op}
	start := time.Now()
	defer func() {
		obs.Duration = time.Since(start)
		f.metrics.ObserveCall(obs)
	}()

	if invalid != nil {
		obs.Outcome = ports.OutcomeInvalidArgument
		span.RecordError(invalid)
		return zero, invalid
	}

	gen := f.detector.Detect()
	obs.Generation = gen
	span.SetAttribute("generation", gen.String())

	backend, err := lookup(gen)
	if err != nil {
		err = unavailable(err)
		obs.Outcome = ports.OutcomeBackendUnavailable
		span.RecordError(err)
		return zero, err
	}

	result, err := run(ctx, backend)
	if err != nil {
		obs.Outcome = ports.OutcomeBackendFailure
		span.RecordError(err)
		return result, err
	}

	obs.Outcome = ports.OutcomeSuccess
	return result, nil
}
