package dispatch

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/buildforge/forge/internal/adapters/editor"   //nolint:depguard // Wired in engine wiring
	"github.com/buildforge/forge/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"github.com/buildforge/forge/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"github.com/buildforge/forge/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			editor.NodeID,
			settings.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			backend, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.SettingsStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewDispatcher(backend, store, log), nil
		},
	})
}
