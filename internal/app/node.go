package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transfer/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/transfer/internal/adapters/detector"   //nolint:depguard // Wired in app layer
	"go.trai.ch/transfer/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/transfer/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"go.trai.ch/transfer/internal/adapters/repository" //nolint:depguard // Wired in app layer
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/transfer/internal/engine/facade"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			repository.NodeID,
			facade.NodeID,
			detector.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	repo, err := graft.Dep[ports.ArtifactRepository](ctx)
	if err != nil {
		return nil, err
	}

	f, err := graft.Dep[*facade.Facade](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[ports.GenerationDetector](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, repo, f, f, det, recorder, log), nil
}
