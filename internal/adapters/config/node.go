package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/buildforge/forge/internal/core/domain"
	"github.com/buildforge/forge/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader node.
	NodeID graft.ID = "adapter.config_loader"
	// ProjectNodeID is the unique identifier for the loaded project node.
	ProjectNodeID graft.ID = "adapter.project"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// The loaded project is itself a node so adapters that need paths from
	// forge.yaml can depend on it directly.
	graft.Register(graft.Node[*domain.Project]{
		ID:        ProjectNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Project, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(".")
		},
	})
}
