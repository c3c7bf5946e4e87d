package domain

// Generation identifies the resolution engine generation a backend is built against.
type Generation string

const (
	// GenerationMaven3 is the legacy engine generation.
	GenerationMaven3 Generation = "maven3"
	// GenerationMaven31 is the engine generation built on the org.eclipse.aether API.
	GenerationMaven31 Generation = "maven31"
)

// AetherMarker is the public symbol only the maven31 generation provides.
const AetherMarker = "org.eclipse.aether.artifact.Artifact"

// String returns the tag.
func (g Generation) String() string {
	return string(g)
}

// Capability names a kind of backend service held by the registry.
type Capability string

const (
	// CapabilityResolver collects and downloads dependencies.
	CapabilityResolver Capability = "dependency-resolver"
	// CapabilityCollector collects dependency graphs without downloading.
	CapabilityCollector Capability = "dependency-collector"
)

// Detection is the outcome of probing for the marker symbol.
type Detection struct {
	Generation Generation
	Marker     string
	// Source names where the marker was found; empty when it was not.
	Source string
}

// Found reports whether the marker was present.
func (d Detection) Found() bool {
	return d.Source != ""
}
