package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/cache"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, cache.NodeID},
		Run: func(ctx context.Context) (*Packager, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackager(hasher, store), nil
		},
	})
}
