package graph

import (
	"context"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
)

// Root is the starting point of a collection.
type Root struct {
	// Artifact is the root's own artifact; zero for a synthetic root.
	Artifact     domain.Artifact
	Scope        string
	Dependencies []domain.Dependency
	// Managed applies to the whole graph. Earlier entries win over later ones.
	Managed    []domain.Dependency
	Exclusions []domain.Exclusion
}

// SetRoot returns a synthetic root whose children are deps.
func SetRoot(deps, managed []domain.Dependency) Root {
	return Root{Dependencies: deps, Managed: managed}
}

// ModelRoot returns a root for a project model.
func ModelRoot(model *domain.Model, managed []domain.Dependency) Root {
	return Root{
		Artifact:     model.Artifact(),
		Dependencies: withManagedVersions(model.Dependencies, model.DependencyManagement),
		Managed:      append(append([]domain.Dependency(nil), managed...), model.DependencyManagement...),
	}
}

// ArtifactRoot reads the descriptor of artifact and returns a root for it. The artifact is
// treated as a compile dependency, so its own test and provided dependencies are left out.
func ArtifactRoot(
	ctx context.Context,
	repo ports.ArtifactRepository,
	req *domain.BuildingRequest,
	artifact domain.Artifact,
) (Root, error) {
	model, err := repo.ReadDescriptor(ctx, req, artifact)
	if err != nil {
		return Root{}, err
	}
	return Root{
		Artifact:     artifact,
		Scope:        domain.ScopeCompile,
		Dependencies: withManagedVersions(model.Dependencies, model.DependencyManagement),
		Managed:      model.DependencyManagement,
	}, nil
}

// DependencyRoot reads the descriptor of dep and returns a root that keeps its scope and exclusions.
func DependencyRoot(
	ctx context.Context,
	repo ports.ArtifactRepository,
	req *domain.BuildingRequest,
	dep *domain.Dependency,
) (Root, error) {
	root, err := ArtifactRoot(ctx, repo, req, dep.Artifact())
	if err != nil {
		return Root{}, err
	}
	root.Scope = dep.EffectiveScope()
	root.Exclusions = dep.Exclusions
	return root, nil
}

// withManagedVersions fills in versions a descriptor leaves to its own dependency management.
func withManagedVersions(deps, managed []domain.Dependency) []domain.Dependency {
	if len(managed) == 0 {
		return deps
	}
	index := managedIndex(managed)
	out := make([]domain.Dependency, len(deps))
	for i, dep := range deps {
		if dep.Version == "" {
			if m, ok := index[dep.Key()]; ok {
				dep.Version = m.Version
			}
		}
		out[i] = dep
	}
	return out
}

func managedIndex(managed []domain.Dependency) map[string]domain.Dependency {
	index := make(map[string]domain.Dependency, len(managed))
	for _, m := range managed {
		if _, ok := index[m.Key()]; !ok {
			index[m.Key()] = m
		}
	}
	return index
}
