package domain

import (
	"regexp"
	"strings"
)

// maxInterpolationPasses bounds nested property references such as ${a} -> ${b} -> value.
const maxInterpolationPasses = 8

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces ${...} references in coordinates with model properties and the
// built-in project.* values. Unknown references are left in place.
func (m *Model) Interpolate() {
	expand := func(s string) string {
		for range maxInterpolationPasses {
			if !strings.Contains(s, "${") {
				return s
			}
			next := placeholder.ReplaceAllStringFunc(s, func(match string) string {
				if v, ok := m.property(match[2 : len(match)-1]); ok {
					return v
				}
				return match
			})
			if next == s {
				return s
			}
			s = next
		}
		return s
	}

	m.GroupID = expand(m.GroupID)
	m.ArtifactID = expand(m.ArtifactID)
	m.Version = expand(m.Version)
	interpolateDependencies(m.Dependencies, expand)
	interpolateDependencies(m.DependencyManagement, expand)
}

func interpolateDependencies(deps []Dependency, expand func(string) string) {
	for i := range deps {
		d := &deps[i]
		d.GroupID = expand(d.GroupID)
		d.ArtifactID = expand(d.ArtifactID)
		d.Version = expand(d.Version)
		d.Type = expand(d.Type)
		d.Classifier = expand(d.Classifier)
		d.Scope = expand(d.Scope)
	}
}

func (m *Model) property(key string) (string, bool) {
	switch strings.TrimPrefix(strings.TrimPrefix(key, "project."), "pom.") {
	case "groupId":
		return m.EffectiveGroupID(), m.EffectiveGroupID() != ""
	case "artifactId":
		return m.ArtifactID, m.ArtifactID != ""
	case "version":
		return m.EffectiveVersion(), m.EffectiveVersion() != ""
	case "parent.groupId":
		if m.Parent != nil {
			return m.Parent.GroupID, true
		}
	case "parent.version":
		if m.Parent != nil {
			return m.Parent.Version, true
		}
	}
	v, ok := m.Properties[key]
	return v, ok
}

// Inherit merges the parent model into m: properties and dependencies m does not declare
// are added, and the parent's dependency management is appended after m's own.
func (m *Model) Inherit(parent *Model) {
	if parent == nil {
		return
	}

	if len(parent.Properties) > 0 && m.Properties == nil {
		m.Properties = make(map[string]string, len(parent.Properties))
	}
	for k, v := range parent.Properties {
		if _, ok := m.Properties[k]; !ok {
			m.Properties[k] = v
		}
	}

	declared := make(map[string]bool, len(m.Dependencies))
	for _, d := range m.Dependencies {
		declared[d.Key()] = true
	}
	for _, d := range parent.Dependencies {
		if !declared[d.Key()] {
			m.Dependencies = append(m.Dependencies, d)
		}
	}

	m.DependencyManagement = append(m.DependencyManagement, parent.DependencyManagement...)
}
