package domain

// Parent references the parent project of a Model.
type Parent struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Model is the subset of a project object model the resolvers need.
type Model struct {
	GroupID              string
	ArtifactID           string
	Version              string
	Packaging            string
	Parent               *Parent
	Properties           map[string]string
	Dependencies         []Dependency
	DependencyManagement []Dependency
}

// EffectiveGroupID returns the model's groupId, inherited from the parent when unset.
func (m *Model) EffectiveGroupID() string {
	if m.GroupID == "" && m.Parent != nil {
		return m.Parent.GroupID
	}
	return m.GroupID
}

// EffectiveVersion returns the model's version, inherited from the parent when unset.
func (m *Model) EffectiveVersion() string {
	if m.Version == "" && m.Parent != nil {
		return m.Parent.Version
	}
	return m.Version
}

// Artifact returns the artifact the model builds.
func (m *Model) Artifact() Artifact {
	packaging := m.Packaging
	if packaging == "" {
		packaging = DefaultType
	}
	return Artifact{
		GroupID:    m.EffectiveGroupID(),
		ArtifactID: m.ArtifactID,
		Version:    m.EffectiveVersion(),
		Type:       packaging,
	}
}

// RemoteRepository is a named remote artifact repository.
type RemoteRepository struct {
	ID  string
	URL string
}

// BuildingRequest carries the ambient configuration a backend needs to collect or resolve.
// The facade only checks it is present and hands it over untouched.
type BuildingRequest struct {
	LocalRepository    string
	RemoteRepositories []RemoteRepository
	Offline            bool
	// Project is the model of the project being built, if any.
	Project    *Model
	Properties map[string]string
}
