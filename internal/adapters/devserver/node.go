package devserver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the dev server Graft node.
const NodeID graft.ID = "adapter.devserver"

func init() {
	graft.Register(graft.Node[ports.ReloadChannel]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReloadChannel, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(log), nil
		},
	})
}
