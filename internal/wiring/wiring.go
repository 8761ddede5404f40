// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stitch/internal/adapters/bundler"
	_ "go.trai.ch/stitch/internal/adapters/cache"
	_ "go.trai.ch/stitch/internal/adapters/config"
	_ "go.trai.ch/stitch/internal/adapters/devserver"
	_ "go.trai.ch/stitch/internal/adapters/fs"
	_ "go.trai.ch/stitch/internal/adapters/graph"
	_ "go.trai.ch/stitch/internal/adapters/logger"
	_ "go.trai.ch/stitch/internal/adapters/packager"
	_ "go.trai.ch/stitch/internal/adapters/report"
	_ "go.trai.ch/stitch/internal/adapters/telemetry"
	_ "go.trai.ch/stitch/internal/adapters/workerpool"
	// Register app nodes.
	_ "go.trai.ch/stitch/internal/app"
)
