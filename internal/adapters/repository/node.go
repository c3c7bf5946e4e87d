package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transfer/internal/adapters/logger"
	"go.trai.ch/transfer/internal/adapters/pom"
	"go.trai.ch/transfer/internal/core/ports"
)

// NodeID is the unique identifier for the artifact repository Graft node.
const NodeID graft.ID = "adapter.repository"

func init() {
	graft.Register(graft.Node[ports.ArtifactRepository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pom.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactRepository, error) {
			reader, err := graft.Dep[ports.ProjectReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(reader, log), nil
		},
	})
}
