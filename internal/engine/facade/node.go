package facade

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transfer/internal/adapters/detector"
	"go.trai.ch/transfer/internal/adapters/metrics"
	"go.trai.ch/transfer/internal/adapters/registry"
	"go.trai.ch/transfer/internal/adapters/telemetry"
	"go.trai.ch/transfer/internal/core/ports"
)

// NodeID is the unique identifier for the facade Graft node.
const NodeID graft.ID = "engine.facade"

func init() {
	graft.Register(graft.Node[*Facade]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			detector.NodeID,
			registry.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Facade, error) {
			det, err := graft.Dep[ports.GenerationDetector](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.BackendRegistry](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return New(det, reg, tracer, recorder), nil
		},
	})
}
