package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/bundler"
	"go.trai.ch/stitch/internal/adapters/cache"
	"go.trai.ch/stitch/internal/adapters/config"
	"go.trai.ch/stitch/internal/adapters/devserver"
	"go.trai.ch/stitch/internal/adapters/graph"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/adapters/packager"
	"go.trai.ch/stitch/internal/adapters/report"
	"go.trai.ch/stitch/internal/adapters/telemetry"
	"go.trai.ch/stitch/internal/adapters/workerpool"
	"go.trai.ch/stitch/internal/core/ports"
)

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			graph.NodeID,
			bundler.NodeID,
			workerpool.NodeID,
			packager.NodeID,
			devserver.NodeID,
			logger.NodeID,
			report.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

//nolint:cyclop // dependency collection is repetitive by nature
func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*graph.Builder](ctx)
	if err != nil {
		return nil, err
	}

	grouper, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	pools, err := graft.Dep[*workerpool.Registry](ctx)
	if err != nil {
		return nil, err
	}

	pack, err := graft.Dep[*packager.Packager](ctx)
	if err != nil {
		return nil, err
	}

	reload, err := graft.Dep[ports.ReloadChannel](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, store, builder, grouper, pools, pack, reload, log, reporter, tracer), nil
}
