// Package domain contains the core domain models for dependency collection and resolution.
package domain

// DependencyNode is a vertex of a collected dependency graph.
// The root node of a graph built from a dependency set has a zero Artifact.
type DependencyNode struct {
	Artifact Artifact
	Scope    string
	Optional bool
	// PremanagedVersion is the declared version when dependency management replaced it.
	PremanagedVersion string
	Children          []*DependencyNode
}

// Dependency returns the node as a dependency declaration.
func (n *DependencyNode) Dependency() Dependency {
	return Dependency{
		GroupID:    n.Artifact.GroupID,
		ArtifactID: n.Artifact.ArtifactID,
		Version:    n.Artifact.Version,
		Type:       n.Artifact.Type,
		Classifier: n.Artifact.Classifier,
		Scope:      n.Scope,
		Optional:   n.Optional,
	}
}

// Walk visits the node and its descendants in pre-order.
// The parents slice lists the path from the root down to (excluding) the visited node.
// Returning false from visit skips the node's children.
func (n *DependencyNode) Walk(visit func(node *DependencyNode, parents []*DependencyNode) bool) {
	n.walk(nil, visit)
}

func (n *DependencyNode) walk(parents []*DependencyNode, visit func(*DependencyNode, []*DependencyNode) bool) {
	if !visit(n, parents) {
		return
	}
	path := append(parents[:len(parents):len(parents)], n)
	for _, child := range n.Children {
		child.walk(path, visit)
	}
}

// CollectorResult is a collected dependency graph.
type CollectorResult struct {
	Root *DependencyNode
}

// Dependencies returns every node below the root in pre-order.
func (r *CollectorResult) Dependencies() []*DependencyNode {
	if r == nil || r.Root == nil {
		return nil
	}

	var nodes []*DependencyNode
	r.Root.Walk(func(node *DependencyNode, _ []*DependencyNode) bool {
		if node != r.Root {
			nodes = append(nodes, node)
		}
		return true
	})
	return nodes
}
