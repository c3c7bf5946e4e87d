package domain

import (
	"path"
	"slices"
	"strings"
)

// Filter narrows which nodes of a collected graph take part in a resolution.
// Implementations must be safe for concurrent use.
type Filter interface {
	// Accept reports whether node is included. parents is the path from the root to node.
	Accept(node *DependencyNode, parents []*DependencyNode) bool
}

// AcceptAll is a Filter that includes every node.
type AcceptAll struct{}

// Accept always returns true.
func (AcceptAll) Accept(*DependencyNode, []*DependencyNode) bool { return true }

// ScopeFilter includes nodes by scope. An empty Included list includes every scope
// not listed in Excluded.
type ScopeFilter struct {
	Included []string
	Excluded []string
}

// Accept implements Filter.
func (f ScopeFilter) Accept(node *DependencyNode, _ []*DependencyNode) bool {
	scope := node.Scope
	if scope == "" {
		scope = ScopeCompile
	}
	if len(f.Included) > 0 && !slices.Contains(f.Included, scope) {
		return false
	}
	return !slices.Contains(f.Excluded, scope)
}

// ExclusionsFilter rejects nodes whose groupId:artifactId matches one of the exclusions.
type ExclusionsFilter struct {
	Exclusions []Exclusion
}

// Accept implements Filter.
func (f ExclusionsFilter) Accept(node *DependencyNode, _ []*DependencyNode) bool {
	for _, e := range f.Exclusions {
		if e.Matches(node.Artifact.GroupID, node.Artifact.ArtifactID) {
			return false
		}
	}
	return true
}

// PatternInclusionsFilter includes nodes whose artifact matches one of the patterns.
// A pattern is groupId[:artifactId[:type[:version]]] where each segment is a glob.
type PatternInclusionsFilter struct {
	Patterns []string
}

// Accept implements Filter.
func (f PatternInclusionsFilter) Accept(node *DependencyNode, _ []*DependencyNode) bool {
	fields := []string{
		node.Artifact.GroupID,
		node.Artifact.ArtifactID,
		node.Artifact.extension(),
		node.Artifact.Version,
	}
	for _, pattern := range f.Patterns {
		if matchSegments(strings.Split(pattern, ":"), fields) {
			return true
		}
	}
	return false
}

func matchSegments(segments, fields []string) bool {
	if len(segments) > len(fields) {
		return false
	}
	for i, segment := range segments {
		ok, err := path.Match(segment, fields[i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// AndFilter includes a node only when every filter includes it.
type AndFilter []Filter

// Accept implements Filter.
func (f AndFilter) Accept(node *DependencyNode, parents []*DependencyNode) bool {
	for _, filter := range f {
		if !filter.Accept(node, parents) {
			return false
		}
	}
	return true
}

// OrFilter includes a node when any filter includes it.
type OrFilter []Filter

// Accept implements Filter.
func (f OrFilter) Accept(node *DependencyNode, parents []*DependencyNode) bool {
	for _, filter := range f {
		if filter.Accept(node, parents) {
			return true
		}
	}
	return false
}
