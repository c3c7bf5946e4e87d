package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transfer/internal/adapters/config"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.GenerationDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.GenerationDetector, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return FromSettings(&settings.Engine), nil
		},
	})
}

// FromSettings builds a Detector probing the symbol table, the engine libraries and the
// engine version, in that order.
func FromSettings(engine *domain.EngineSettings) *Detector {
	locator := AnyLocator{
		NewSymbolTable(engine.Symbols...),
		LibraryLocator{Home: engine.Home},
		NewVersionLocator(engine.Version),
	}

	var opts []Option
	if !engine.CacheDetection {
		opts = append(opts, WithoutCache())
	}
	return New(locator, opts...)
}
