package editor

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/buildforge/forge/internal/adapters/config"
	"github.com/buildforge/forge/internal/adapters/logger"
	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports"
)

// NodeID is the unique identifier for the editor backend node.
const NodeID graft.ID = "adapter.backend"

func init() {
	graft.Register(graft.Node[ports.Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProjectNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Backend, error) {
			project, err := graft.Dep[*domain.Project](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBackend(project, log), nil
		},
	})
}
