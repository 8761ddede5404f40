package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheStore, error) {
			return NewStore()
		},
	})
}
