package detector

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// minimumVersions maps a symbol namespace to the first engine release that ships it.
var minimumVersions = map[string]string{
	"org.eclipse.aether.": ">= 3.1.0-0",
}

// VersionLocator infers symbol presence from the configured engine version.
type VersionLocator struct {
	version *semver.Version
	raw     string
}

// NewVersionLocator returns a locator for the engine version raw. An empty or unparsable
// version yields a locator that never matches.
func NewVersionLocator(raw string) VersionLocator {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return VersionLocator{raw: raw}
	}
	return VersionLocator{version: v, raw: raw}
}

// Lookup implements Locator.
func (p VersionLocator) Lookup(symbol string) (string, bool) {
	if p.version == nil {
		return "", false
	}
	for prefix, constraint := range minimumVersions {
		if !strings.HasPrefix(symbol, prefix) {
			continue
		}
		c, err := semver.NewConstraint(constraint)
		if err != nil {
			return "", false
		}
		if c.Check(p.version) {
			return "engine version " + p.raw, true
		}
	}
	return "", false
}
