package repository

import (
	"context"
	"errors"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadDescriptor returns the effective model of artifact: its pom with the parent chain
// merged and imported dependency management expanded. A missing pom yields a model
// without dependencies.
func (r *Repository) ReadDescriptor(
	ctx context.Context,
	req *domain.BuildingRequest,
	artifact domain.Artifact,
) (*domain.Model, error) {
	res, err := r.Fetch(ctx, req, artifact.Descriptor())
	if errors.Is(err, domain.ErrArtifactNotFound) {
		r.logger.Warn("the descriptor for " + artifact.String() + " is missing, no dependency information available")
		return &domain.Model{
			GroupID:    artifact.GroupID,
			ArtifactID: artifact.ArtifactID,
			Version:    artifact.Version,
			Properties: map[string]string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.read(ctx, req, res.Path, artifact.Descriptor(), 0)
}

// ReadProject reads the project descriptor at path and completes it like ReadDescriptor.
func (r *Repository) ReadProject(ctx context.Context, req *domain.BuildingRequest, path string) (*domain.Model, error) {
	m, err := r.reader.Read(path)
	if err != nil {
		return nil, err
	}
	return r.complete(ctx, req, m, 0)
}

func (r *Repository) load(
	ctx context.Context,
	req *domain.BuildingRequest,
	pom domain.Artifact,
	depth int,
) (*domain.Model, error) {
	if depth > maxDescriptorDepth {
		return nil, domain.Annotate(domain.ErrDescriptorTooDeep, "artifact", pom.String())
	}

	res, err := r.Fetch(ctx, req, pom)
	if err != nil {
		return nil, err
	}
	return r.read(ctx, req, res.Path, pom, depth)
}

func (r *Repository) read(
	ctx context.Context,
	req *domain.BuildingRequest,
	path string,
	pom domain.Artifact,
	depth int,
) (*domain.Model, error) {
	m, err := r.reader.Read(path)
	if err != nil {
		return nil, zerr.With(err, "artifact", pom.String())
	}
	return r.complete(ctx, req, m, depth)
}

func (r *Repository) complete(
	ctx context.Context,
	req *domain.BuildingRequest,
	m *domain.Model,
	depth int,
) (*domain.Model, error) {
	if m.Parent != nil {
		parent, err := r.load(ctx, req, domain.Artifact{
			GroupID:    m.Parent.GroupID,
			ArtifactID: m.Parent.ArtifactID,
			Version:    m.Parent.Version,
			Type:       "pom",
		}, depth+1)
		if err != nil {
			return nil, zerr.With(err, "child", m.ArtifactID)
		}
		m.Inherit(parent)
		m.Interpolate()
	}

	managed, err := r.expandImports(ctx, req, m.DependencyManagement, depth)
	if err != nil {
		return nil, err
	}
	m.DependencyManagement = managed
	return m, nil
}

// expandImports replaces import-scoped pom entries with the dependency management of the
// referenced descriptor, in place.
func (r *Repository) expandImports(
	ctx context.Context,
	req *domain.BuildingRequest,
	managed []domain.Dependency,
	depth int,
) ([]domain.Dependency, error) {
	var out []domain.Dependency
	for _, d := range managed {
		if d.Scope != domain.ScopeImport || d.EffectiveType() != "pom" {
			out = append(out, d)
			continue
		}
		bom, err := r.load(ctx, req, domain.Artifact{
			GroupID:    d.GroupID,
			ArtifactID: d.ArtifactID,
			Version:    d.Version,
			Type:       "pom",
		}, depth+1)
		if err != nil {
			return nil, zerr.With(err, "import", d.Key())
		}
		out = append(out, bom.DependencyManagement...)
	}
	return out, nil
}
