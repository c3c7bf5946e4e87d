package domain

import "strings"

// Dependency scopes understood by the collectors.
const (
	ScopeCompile  = "compile"
	ScopeRuntime  = "runtime"
	ScopeProvided = "provided"
	ScopeTest     = "test"
	ScopeSystem   = "system"
	ScopeImport   = "import"
)

// DefaultType is the artifact type assumed when a coordinate does not name one.
const DefaultType = "jar"

// Exclusion removes a groupId:artifactId pair (either part may be "*") from a dependency's subtree.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Matches reports whether the exclusion applies to the given groupId and artifactId.
func (e Exclusion) Matches(groupID, artifactID string) bool {
	return (e.GroupID == "*" || e.GroupID == groupID) && (e.ArtifactID == "*" || e.ArtifactID == artifactID)
}

// Dependency is a single dependency declaration as found in a project model.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Type       string
	Classifier string
	Scope      string
	Optional   bool
	Exclusions []Exclusion
}

// EffectiveType returns the declared type, defaulting to jar.
func (d Dependency) EffectiveType() string {
	if d.Type == "" {
		return DefaultType
	}
	return d.Type
}

// EffectiveScope returns the declared scope, defaulting to compile.
func (d Dependency) EffectiveScope() string {
	if d.Scope == "" {
		return ScopeCompile
	}
	return d.Scope
}

// Key returns the version-less identity used for mediation and dependency management.
func (d Dependency) Key() string {
	return artifactKey(d.GroupID, d.ArtifactID, d.EffectiveType(), d.Classifier)
}

// Artifact returns the artifact this dependency points at.
func (d Dependency) Artifact() Artifact {
	return Artifact{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    d.Version,
		Type:       d.EffectiveType(),
		Classifier: d.Classifier,
	}
}

// String renders the dependency as groupId:artifactId:type[:classifier]:version[:scope].
func (d Dependency) String() string {
	s := d.Artifact().String()
	if d.Scope != "" {
		s += ":" + d.Scope
	}
	return s
}

// DependableCoordinate is a generic coordinate that can act as the root of a resolution.
type DependableCoordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
	Type       string
	Classifier string
}

// Artifact returns the artifact addressed by the coordinate.
func (c DependableCoordinate) Artifact() Artifact {
	t := c.Type
	if t == "" {
		t = DefaultType
	}
	return Artifact{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
		Type:       t,
		Classifier: c.Classifier,
	}
}

// String renders the coordinate in artifact notation.
func (c DependableCoordinate) String() string {
	return c.Artifact().String()
}

// ParseCoordinate parses groupId:artifactId:version[:type[:classifier]].
func ParseCoordinate(s string) (DependableCoordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 3 || len(parts) > 5 {
		return DependableCoordinate{}, withCoordinate(ErrInvalidCoordinate, s)
	}
	for _, p := range parts {
		if p == "" {
			return DependableCoordinate{}, withCoordinate(ErrInvalidCoordinate, s)
		}
	}

	c := DependableCoordinate{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Version:    parts[2],
	}
	if len(parts) > 3 {
		c.Type = parts[3]
	}
	if len(parts) > 4 {
		c.Classifier = parts[4]
	}
	return c, nil
}

// ParseExclusion parses groupId:artifactId where either side may be "*".
func ParseExclusion(s string) (Exclusion, error) {
	groupID, artifactID, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || groupID == "" || artifactID == "" {
		return Exclusion{}, withCoordinate(ErrInvalidExclusion, s)
	}
	return Exclusion{GroupID: groupID, ArtifactID: artifactID}, nil
}

func artifactKey(groupID, artifactID, typ, classifier string) string {
	key := groupID + ":" + artifactID + ":" + typ
	if classifier != "" {
		key += ":" + classifier
	}
	return key
}
