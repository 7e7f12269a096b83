package scenes

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/buildforge/forge/internal/adapters/config"
	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports"
)

// NodeID is the unique identifier for the scene enumerator node.
const NodeID graft.ID = "adapter.scene_enumerator"

func init() {
	graft.Register(graft.Node[ports.SceneEnumerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ProjectNodeID},
		Run: func(ctx context.Context) (ports.SceneEnumerator, error) {
			project, err := graft.Dep[*domain.Project](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnumerator(project), nil
		},
	})
}
