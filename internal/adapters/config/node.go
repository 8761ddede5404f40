package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the config resolver Graft node.
const NodeID graft.ID = "adapter.config_resolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
