package graph

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/cache"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the graph builder Graft node.
const NodeID graft.ID = "adapter.graph_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(hasher, store, log), nil
		},
	})
}
