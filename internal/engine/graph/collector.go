// Package graph builds dependency graphs from project descriptors.
package graph

import (
	"context"
	"errors"
	"slices"

	dgraph "github.com/dominikbraun/graph"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/zerr"
)

// syntheticRootID names the root vertex of a collection without a root artifact.
const syntheticRootID = "<root>"

// Collector expands a root breadth-first. The first occurrence of a groupId:artifactId:type
// wins and later occurrences are omitted. The collected edges are kept in a directed graph
// that tells an omitted back-reference (cycle) from a competing version (conflict).
type Collector struct {
	repo   ports.ArtifactRepository
	logger ports.Logger
}

// NewCollector creates a Collector reading descriptors from repo.
func NewCollector(repo ports.ArtifactRepository, logger ports.Logger) *Collector {
	return &Collector{repo: repo, logger: logger}
}

type pending struct {
	node       *domain.DependencyNode
	id         string
	deps       []domain.Dependency
	exclusions []domain.Exclusion
	depth      int
}

// Collect builds the graph below root.
func (c *Collector) Collect(ctx context.Context, req *domain.BuildingRequest, root Root) (*domain.CollectorResult, error) {
	rootNode := &domain.DependencyNode{Artifact: root.Artifact, Scope: root.Scope}
	rootID := syntheticRootID
	if root.Artifact.ArtifactID != "" {
		rootID = root.Artifact.Key()
	}

	g := dgraph.New(dgraph.StringHash, dgraph.Directed())
	if err := g.AddVertex(rootID); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGraphCollectionFailed.Error())
	}

	managed := managedIndex(root.Managed)
	seen := map[string]bool{rootID: true}
	queue := []pending{{
		node:       rootNode,
		id:         rootID,
		deps:       root.Dependencies,
		exclusions: root.Exclusions,
	}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, declared := range cur.deps {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			dep, premanaged, include := c.prepare(cur, declared, managed)
			if !include {
				continue
			}
			if dep.Version == "" {
				return nil, zerr.With(domain.Annotate(domain.ErrMissingVersion, "dependency", dep.Key()), "parent", cur.id)
			}

			key := dep.Key()
			if seen[key] {
				c.omit(g, cur.id, key)
				continue
			}
			seen[key] = true

			if err := addEdge(g, cur.id, key); err != nil {
				return nil, err
			}

			node := &domain.DependencyNode{
				Artifact:          dep.Artifact(),
				Scope:             dep.Scope,
				Optional:          dep.Optional,
				PremanagedVersion: premanaged,
			}
			cur.node.Children = append(cur.node.Children, node)

			if dep.Scope == domain.ScopeSystem {
				continue
			}

			descriptor, err := c.repo.ReadDescriptor(ctx, req, node.Artifact)
			if err != nil {
				return nil, err
			}

			queue = append(queue, pending{
				node:       node,
				id:         key,
				deps:       withManagedVersions(descriptor.Dependencies, descriptor.DependencyManagement),
				exclusions: mergeExclusions(cur.exclusions, dep.Exclusions),
				depth:      cur.depth + 1,
			})
		}
	}

	return &domain.CollectorResult{Root: rootNode}, nil
}

// prepare applies scope propagation, exclusions and dependency management to a declaration.
// Management overrides and optional pruning start below the root's direct dependencies.
func (c *Collector) prepare(
	cur pending,
	dep domain.Dependency,
	managed map[string]domain.Dependency,
) (domain.Dependency, string, bool) {
	transitive := cur.depth > 0
	// Roots that are themselves dependencies pass their scope down like any other node.
	propagate := transitive || cur.node.Scope != ""

	for _, e := range cur.exclusions {
		if e.Matches(dep.GroupID, dep.ArtifactID) {
			return dep, "", false
		}
	}

	var premanaged string
	if m, ok := managed[dep.Key()]; ok {
		switch {
		case dep.Version == "":
			dep.Version = m.Version
		case transitive && m.Version != "" && m.Version != dep.Version:
			premanaged = dep.Version
			dep.Version = m.Version
		}
		if dep.Scope == "" || (transitive && m.Scope != "") {
			dep.Scope = m.Scope
		}
		if len(m.Exclusions) > 0 {
			dep.Exclusions = mergeExclusions(dep.Exclusions, m.Exclusions)
		}
	}

	if transitive && dep.Optional {
		return dep, "", false
	}

	if !propagate {
		dep.Scope = dep.EffectiveScope()
		return dep, premanaged, true
	}

	parentScope := cur.node.Scope
	if parentScope == "" {
		parentScope = domain.ScopeCompile
	}
	dep.Scope = propagateScope(parentScope, dep.EffectiveScope())
	if dep.Scope == "" {
		return dep, "", false
	}
	return dep, premanaged, true
}

// omit logs why an already collected key was not added again. The graph is left untouched.
func (c *Collector) omit(g dgraph.Graph[string, string], from, key string) {
	cycle, err := dgraph.CreatesCycle(g, from, key)
	switch {
	case err != nil:
		c.logger.Debug("omitted " + key + " via " + from)
	case cycle:
		c.logger.Debug("omitted " + key + " for cycle via " + from)
	default:
		c.logger.Debug("omitted " + key + " for conflict via " + from)
	}
}

func addEdge(g dgraph.Graph[string, string], from, to string) error {
	if err := g.AddVertex(to); err != nil && !errors.Is(err, dgraph.ErrVertexAlreadyExists) {
		return zerr.Wrap(err, domain.ErrGraphCollectionFailed.Error())
	}
	if err := g.AddEdge(from, to); err != nil && !errors.Is(err, dgraph.ErrEdgeAlreadyExists) {
		return zerr.With(zerr.Wrap(err, domain.ErrGraphCollectionFailed.Error()), "edge", from+" -> "+to)
	}
	return nil
}

func mergeExclusions(a, b []domain.Exclusion) []domain.Exclusion {
	if len(b) == 0 {
		return a
	}
	return append(slices.Clip(a), b...)
}
