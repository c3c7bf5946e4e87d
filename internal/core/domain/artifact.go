package domain

import (
	"path"
	"strings"
)

// Artifact identifies a single file in a Maven-layout repository.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string
	Type       string
	Classifier string
}

// Key returns the version-less identity of the artifact.
func (a Artifact) Key() string {
	return artifactKey(a.GroupID, a.ArtifactID, a.extension(), a.Classifier)
}

// String renders groupId:artifactId:type[:classifier]:version.
func (a Artifact) String() string {
	s := a.GroupID + ":" + a.ArtifactID + ":" + a.extension()
	if a.Classifier != "" {
		s += ":" + a.Classifier
	}
	return s + ":" + a.Version
}

// Descriptor returns the pom artifact describing this artifact.
func (a Artifact) Descriptor() Artifact {
	return Artifact{
		GroupID:    a.GroupID,
		ArtifactID: a.ArtifactID,
		Version:    a.Version,
		Type:       "pom",
	}
}

// Path returns the repository-relative path of the artifact using the Maven 2 layout,
// e.g. org/slf4j/slf4j-api/2.0.9/slf4j-api-2.0.9.jar.
func (a Artifact) Path() string {
	name := a.ArtifactID + "-" + a.Version
	if a.Classifier != "" {
		name += "-" + a.Classifier
	}
	name += "." + fileExtension(a.extension())

	return path.Join(strings.ReplaceAll(a.GroupID, ".", "/"), a.ArtifactID, a.Version, name)
}

func (a Artifact) extension() string {
	if a.Type == "" {
		return DefaultType
	}
	return a.Type
}

// fileExtension maps packaging types onto the file extension used in repositories.
func fileExtension(typ string) string {
	switch typ {
	case "bundle", "maven-plugin", "ejb", "test-jar", "java-source", "javadoc":
		return "jar"
	default:
		return typ
	}
}

// ArtifactResult is the outcome of resolving one artifact.
type ArtifactResult struct {
	Artifact Artifact
	// Path is the absolute location of the artifact in the local repository.
	Path string
	// Repository is the id of the repository the artifact came from ("local" when already present).
	Repository string
	// Checksum is the hex xxhash64 of the file content.
	Checksum string
}
