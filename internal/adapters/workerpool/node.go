package workerpool

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the pool registry Graft node.
const NodeID graft.ID = "adapter.workerpool_registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})
}
