package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/buildforge/forge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/buildforge/forge/internal/adapters/scenes"    //nolint:depguard // Wired in app layer
	"github.com/buildforge/forge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/buildforge/forge/internal/core/ports"
	"github.com/buildforge/forge/internal/engine/dispatch"
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
			scenes.NodeID,
			dispatch.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			enumerator, err := graft.Dep[ports.SceneEnumerator](ctx)
			if err != nil {
				return nil, err
			}

			dispatcher, err := graft.Dep[*dispatch.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(enumerator, dispatcher, tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}
