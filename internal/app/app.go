// Package app implements the application layer for transfer.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/transfer/internal/adapters/telemetry"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
)

// logControl is implemented by loggers whose format and verbosity can change at runtime.
type logControl interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// MetricsExporter writes collected metrics to a file.
type MetricsExporter interface {
	WriteTextfile(path string) error
}

// App represents the main application logic.
type App struct {
	settings  *domain.Settings
	repo      ports.ArtifactRepository
	resolver  ports.DependencyResolver
	collector ports.DependencyCollector
	detector  ports.GenerationDetector
	metrics   MetricsExporter
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	repo ports.ArtifactRepository,
	resolver ports.DependencyResolver,
	collector ports.DependencyCollector,
	detector ports.GenerationDetector,
	metrics MetricsExporter,
	log ports.Logger,
) *App {
	return &App{
		settings:  settings,
		repo:      repo,
		resolver:  resolver,
		collector: collector,
		detector:  detector,
		metrics:   metrics,
		logger:    log,
	}
}

// Resolve downloads the dependencies of the given coordinates or project and lists them on out.
func (a *App) Resolve(ctx context.Context, out io.Writer, opts ResolveOptions) error {
	return a.session(ctx, opts.GlobalOptions, func(ctx context.Context) error {
		filter, err := newFilter(opts.Scopes, opts.Excludes)
		if err != nil {
			return err
		}
		req := a.request(opts.GlobalOptions)

		results, err := a.resolve(ctx, req, opts, filter)
		if err != nil {
			return err
		}

		a.logger.Debug(fmt.Sprintf("resolved %d artifacts", len(results)))
		return newRenderer(out).Results(results)
	})
}

func (a *App) resolve(
	ctx context.Context,
	req *domain.BuildingRequest,
	opts ResolveOptions,
	filter domain.Filter,
) ([]domain.ArtifactResult, error) {
	deps, err := parseDependencies(opts.Coordinates)
	if err != nil {
		return nil, err
	}

	if opts.Project != "" {
		model, err := a.repo.ReadProject(ctx, req, opts.Project)
		if err != nil {
			return nil, err
		}
		req.Project = model
		if len(deps) == 0 {
			return a.resolver.ResolveModel(ctx, req, model, filter)
		}
		return a.resolver.ResolveDependencies(ctx, req, deps, model.DependencyManagement, filter)
	}

	switch len(opts.Coordinates) {
	case 0:
		return nil, domain.ErrNoRootsSpecified
	case 1:
		coordinate, err := domain.ParseCoordinate(opts.Coordinates[0])
		if err != nil {
			return nil, err
		}
		return a.resolver.ResolveCoordinate(ctx, req, &coordinate, filter)
	default:
		return a.resolver.ResolveDependencies(ctx, req, deps, nil, filter)
	}
}

// Collect builds the dependency graph of a coordinate or project and prints it on out.
func (a *App) Collect(ctx context.Context, out io.Writer, opts CollectOptions) error {
	return a.session(ctx, opts.GlobalOptions, func(ctx context.Context) error {
		req := a.request(opts.GlobalOptions)

		result, err := a.collect(ctx, req, opts)
		if err != nil {
			return err
		}

		r := newRenderer(out)
		if opts.Format == FormatList {
			return r.List(result)
		}
		return r.Tree(result)
	})
}

func (a *App) collect(
	ctx context.Context,
	req *domain.BuildingRequest,
	opts CollectOptions,
) (*domain.CollectorResult, error) {
	switch {
	case opts.Project != "":
		model, err := a.repo.ReadProject(ctx, req, opts.Project)
		if err != nil {
			return nil, err
		}
		req.Project = model
		return a.collector.CollectProject(ctx, req)
	case opts.Coordinate == "":
		return nil, domain.ErrNoRootsSpecified
	}

	coordinate, err := domain.ParseCoordinate(opts.Coordinate)
	if err != nil {
		return nil, err
	}
	if opts.Scope == "" {
		return a.collector.CollectCoordinate(ctx, req, &coordinate)
	}

	dep := domain.Dependency{
		GroupID:    coordinate.GroupID,
		ArtifactID: coordinate.ArtifactID,
		Version:    coordinate.Version,
		Type:       coordinate.Type,
		Classifier: coordinate.Classifier,
		Scope:      opts.Scope,
	}
	return a.collector.CollectDependency(ctx, req, &dep)
}

// Detect reports the active engine generation and how it was determined.
func (a *App) Detect(ctx context.Context, out io.Writer, opts GlobalOptions) error {
	return a.session(ctx, opts, func(context.Context) error {
		return newRenderer(out).Detection(a.detector.Explain())
	})
}

// session applies the global options around run.
func (a *App) session(ctx context.Context, opts GlobalOptions, run func(context.Context) error) error {
	if lc, ok := a.logger.(logControl); ok {
		lc.SetJSON(opts.JSON)
		lc.SetVerbose(opts.Trace)
	}

	if opts.Trace {
		shutdown := telemetry.Setup(telemetry.NewLogBridge(a.logger))
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	err := run(ctx)

	if opts.MetricsOut != "" {
		if exportErr := a.metrics.WriteTextfile(opts.MetricsOut); exportErr != nil {
			if err != nil {
				a.logger.Error(exportErr)
				return err
			}
			return exportErr
		}
	}
	return err
}

func (a *App) request(opts GlobalOptions) *domain.BuildingRequest {
	req := a.settings.NewBuildingRequest(nil)
	if opts.Offline {
		req.Offline = true
	}
	if opts.LocalRepository != "" {
		req.LocalRepository = opts.LocalRepository
	}
	return req
}

func parseDependencies(coordinates []string) ([]domain.Dependency, error) {
	deps := make([]domain.Dependency, 0, len(coordinates))
	for _, s := range coordinates {
		c, err := domain.ParseCoordinate(s)
		if err != nil {
			return nil, err
		}
		deps = append(deps, domain.Dependency{
			GroupID:    c.GroupID,
			ArtifactID: c.ArtifactID,
			Version:    c.Version,
			Type:       c.Type,
			Classifier: c.Classifier,
		})
	}
	return deps, nil
}

// newFilter combines scope inclusions and groupId:artifactId exclusions.
func newFilter(scopes, excludes []string) (domain.Filter, error) {
	var filters domain.AndFilter
	if len(scopes) > 0 {
		filters = append(filters, domain.ScopeFilter{Included: scopes})
	}
	if len(excludes) > 0 {
		exclusions := make([]domain.Exclusion, 0, len(excludes))
		for _, s := range excludes {
			e, err := domain.ParseExclusion(s)
			if err != nil {
				return nil, domain.Annotate(err, "flag", "exclude")
			}
			exclusions = append(exclusions, e)
		}
		filters = append(filters, domain.ExclusionsFilter{Exclusions: exclusions})
	}
	if len(filters) == 0 {
		return domain.AcceptAll{}, nil
	}
	return filters, nil
}
