// Package pom reads project object model descriptors.
package pom

import (
	"bytes"
	"encoding/xml"
	"os"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
)

var _ ports.ProjectReader = (*Reader)(nil)

// Reader parses pom.xml files into domain models.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the descriptor at path.
func (r *Reader) Read(path string) (*domain.Model, error) {
	//nolint:gosec // path is provided by the user or the local repository layout
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error()), "path", path)
	}

	m, err := r.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Parse parses descriptor content. Property references in coordinates are interpolated
// against the descriptor's own properties.
func (r *Reader) Parse(data []byte) (*domain.Model, error) {
	var project projectXML
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&project); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDescriptorParseFailed.Error())
	}

	m := project.toModel()
	m.Interpolate()
	return m, nil
}
