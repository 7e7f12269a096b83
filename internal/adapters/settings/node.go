package settings

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/buildforge/forge/internal/adapters/config"
	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports"
)

// NodeID is the unique identifier for the settings store node.
const NodeID graft.ID = "adapter.settings_store"

func init() {
	graft.Register(graft.Node[ports.SettingsStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProjectNodeID},
		Run: func(ctx context.Context) (ports.SettingsStore, error) {
			project, err := graft.Dep[*domain.Project](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(project)
		},
	})
}
