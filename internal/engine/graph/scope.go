package graph

import "go.trai.ch/transfer/internal/core/domain"

// propagateScope returns the scope of a transitive dependency declared with childScope
// under a parent in parentScope, or "" when the dependency does not propagate.
func propagateScope(parentScope, childScope string) string {
	switch childScope {
	case domain.ScopeTest, domain.ScopeProvided, domain.ScopeSystem, domain.ScopeImport:
		return ""
	}

	switch parentScope {
	case domain.ScopeProvided, domain.ScopeTest:
		return parentScope
	case domain.ScopeRuntime:
		return domain.ScopeRuntime
	default:
		return childScope
	}
}
