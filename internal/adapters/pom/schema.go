package pom

import (
	"encoding/xml"
	"strings"

	"go.trai.ch/transfer/internal/core/domain"
)

type projectXML struct {
	GroupID              string          `xml:"groupId"`
	ArtifactID           string          `xml:"artifactId"`
	Version              string          `xml:"version"`
	Packaging            string          `xml:"packaging"`
	Parent               *parentXML      `xml:"parent"`
	Properties           propertiesXML   `xml:"properties"`
	Dependencies         []dependencyXML `xml:"dependencies>dependency"`
	DependencyManagement []dependencyXML `xml:"dependencyManagement>dependencies>dependency"`
}

type parentXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type dependencyXML struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Type       string         `xml:"type"`
	Classifier string         `xml:"classifier"`
	Scope      string         `xml:"scope"`
	Optional   string         `xml:"optional"`
	Exclusions []exclusionXML `xml:"exclusions>exclusion"`
}

type exclusionXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// propertiesXML holds the free-form <properties> block, keyed by element name.
type propertiesXML map[string]string

// UnmarshalXML implements xml.Unmarshaler.
func (p *propertiesXML) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	props := propertiesXML{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			props[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			*p = props
			return nil
		}
	}
}

func (p *projectXML) toModel() *domain.Model {
	m := &domain.Model{
		GroupID:              trim(p.GroupID),
		ArtifactID:           trim(p.ArtifactID),
		Version:              trim(p.Version),
		Packaging:            trim(p.Packaging),
		Properties:           map[string]string(p.Properties),
		Dependencies:         toDependencies(p.Dependencies),
		DependencyManagement: toDependencies(p.DependencyManagement),
	}
	if m.Properties == nil {
		m.Properties = map[string]string{}
	}
	if p.Parent != nil {
		m.Parent = &domain.Parent{
			GroupID:    trim(p.Parent.GroupID),
			ArtifactID: trim(p.Parent.ArtifactID),
			Version:    trim(p.Parent.Version),
		}
	}
	return m
}

func toDependencies(in []dependencyXML) []domain.Dependency {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Dependency, 0, len(in))
	for _, d := range in {
		dep := domain.Dependency{
			GroupID:    trim(d.GroupID),
			ArtifactID: trim(d.ArtifactID),
			Version:    trim(d.Version),
			Type:       trim(d.Type),
			Classifier: trim(d.Classifier),
			Scope:      trim(d.Scope),
			Optional:   trim(d.Optional) == "true",
		}
		for _, e := range d.Exclusions {
			dep.Exclusions = append(dep.Exclusions, domain.Exclusion{
				GroupID:    trim(e.GroupID),
				ArtifactID: trim(e.ArtifactID),
			})
		}
		out = append(out, dep)
	}
	return out
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
