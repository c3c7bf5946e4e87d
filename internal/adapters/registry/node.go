package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transfer/internal/backends/maven3"
	"go.trai.ch/transfer/internal/backends/maven31"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
)

// NodeID is the unique identifier for the backend registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.BackendRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{maven3.NodeID, maven31.NodeID},
		Run: func(ctx context.Context) (ports.BackendRegistry, error) {
			legacy, err := graft.Dep[*maven3.Backend](ctx)
			if err != nil {
				return nil, err
			}
			aether, err := graft.Dep[*maven31.Backend](ctx)
			if err != nil {
				return nil, err
			}
			return New(map[domain.Generation]Provider{
				legacy.Generation(): Static(legacy),
				aether.Generation(): Static(aether),
			}), nil
		},
	})
}
