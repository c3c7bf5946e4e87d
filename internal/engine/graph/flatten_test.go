package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/engine/graph"
)

func node(artifactID, scope string, children ...*domain.DependencyNode) *domain.DependencyNode {
	return &domain.DependencyNode{
		Artifact: domain.Artifact{GroupID: "g", ArtifactID: artifactID, Version: "1", Type: "jar"},
		Scope:    scope,
		Children: children,
	}
}

func ids(nodes []*domain.DependencyNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Artifact.ArtifactID
	}
	return out
}

func TestFlatten(t *testing.T) {
	root := node("root", "",
		node("a", domain.ScopeCompile,
			node("a1", domain.ScopeCompile),
			node("a2", domain.ScopeRuntime),
		),
		node("t", domain.ScopeTest,
			node("t1", domain.ScopeTest),
		),
		node("b", domain.ScopeRuntime),
	)

	tests := []struct {
		name   string
		filter domain.Filter
		want   []string
	}{
		{name: "nil filter", filter: nil, want: []string{"a", "a1", "a2", "t", "t1", "b"}},
		{name: "accept all", filter: domain.AcceptAll{}, want: []string{"a", "a1", "a2", "t", "t1", "b"}},
		{
			name:   "compile only",
			filter: domain.ScopeFilter{Included: []string{domain.ScopeCompile}},
			want:   []string{"a", "a1"},
		},
		{
			name:   "exclude test",
			filter: domain.ScopeFilter{Excluded: []string{domain.ScopeTest}},
			want:   []string{"a", "a1", "a2", "b"},
		},
		{
			name:   "rejected parent keeps children",
			filter: domain.ExclusionsFilter{Exclusions: []domain.Exclusion{{GroupID: "g", ArtifactID: "a"}}},
			want:   []string{"a1", "a2", "t", "t1", "b"},
		},
		{
			name:   "pattern",
			filter: domain.PatternInclusionsFilter{Patterns: []string{"g:a*"}},
			want:   []string{"a", "a1", "a2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(graph.Flatten(root, tt.filter)))
		})
	}
}

func TestFlatten_NilRoot(t *testing.T) {
	assert.Nil(t, graph.Flatten(nil, domain.AcceptAll{}))
}
