package graph

import "go.trai.ch/transfer/internal/core/domain"

// Flatten returns the nodes below root accepted by filter, in pre-order.
// A rejected node's children are still considered.
func Flatten(root *domain.DependencyNode, filter domain.Filter) []*domain.DependencyNode {
	if root == nil {
		return nil
	}

	var nodes []*domain.DependencyNode
	root.Walk(func(node *domain.DependencyNode, parents []*domain.DependencyNode) bool {
		if node == root {
			return true
		}
		if filter == nil || filter.Accept(node, parents) {
			nodes = append(nodes, node)
		}
		return true
	})
	return nodes
}
