package detector

import (
	"sync"

	"go.trai.ch/transfer/internal/core/domain"
)

// Detector selects maven31 when the aether marker is present and maven3 otherwise.
// It is safe for concurrent use.
type Detector struct {
	locator Locator
	marker  string
	cache   bool

	once   sync.Once
	cached domain.Detection
}

// Option configures a Detector.
type Option func(*Detector)

// WithoutCache makes every call consult the environment again.
func WithoutCache() Option {
	return func(d *Detector) { d.cache = false }
}

// WithMarker overrides the symbol looked up.
func WithMarker(marker string) Option {
	return func(d *Detector) { d.marker = marker }
}

// New creates a Detector over locator. The first result is memoized unless WithoutCache is given.
func New(locator Locator, opts ...Option) *Detector {
	d := &Detector{
		locator: locator,
		marker:  domain.AetherMarker,
		cache:   true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect implements ports.GenerationDetector.
func (d *Detector) Detect() domain.Generation {
	return d.Explain().Generation
}

// Explain implements ports.GenerationDetector.
func (d *Detector) Explain() domain.Detection {
	if !d.cache {
		return d.lookupOnce()
	}
	d.once.Do(func() {
		d.cached = d.lookupOnce()
	})
	return d.cached
}

func (d *Detector) lookupOnce() domain.Detection {
	detection := domain.Detection{
		Generation: domain.GenerationMaven3,
		Marker:     d.marker,
	}
	if d.locator == nil {
		return detection
	}
	if source, ok := d.locator.Lookup(d.marker); ok {
		detection.Generation = domain.GenerationMaven31
		detection.Source = source
	}
	return detection
}
