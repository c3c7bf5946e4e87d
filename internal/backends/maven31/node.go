package maven31

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transfer/internal/adapters/config"
	"go.trai.ch/transfer/internal/adapters/logger"
	"go.trai.ch/transfer/internal/adapters/repository"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
)

// NodeID is the unique identifier for the maven31 backend Graft node.
const NodeID graft.ID = "backend.maven31"

func init() {
	graft.Register(graft.Node[*Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{repository.NodeID, logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Backend, error) {
			repo, err := graft.Dep[ports.ArtifactRepository](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(repo, log, settings.Parallelism), nil
		},
	})
}
