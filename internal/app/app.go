// Package app implements the application layer for stitch.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/stitch/internal/adapters/graph"
	"go.trai.ch/stitch/internal/adapters/packager"
	"go.trai.ch/stitch/internal/adapters/workerpool"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver ports.ConfigResolver
	cache    ports.CacheStore
	graph    *graph.Builder
	bundler  ports.Bundler
	pools    *workerpool.Registry
	reload   ports.ReloadChannel
	logger   ports.Logger
	reporter ports.Reporter
	tracer   ports.Tracer
}

// New creates a new App instance. The packaging operation is registered on
// the pool registry here, before any pool can run.
func New(
	resolver ports.ConfigResolver,
	cache ports.CacheStore,
	builder *graph.Builder,
	bundler ports.Bundler,
	pools *workerpool.Registry,
	pack *packager.Packager,
	reload ports.ReloadChannel,
	log ports.Logger,
	reporter ports.Reporter,
	tracer ports.Tracer,
) *App {
	pools.RegisterOp(domain.OpPackageBundle, pack.Op())

	return &App{
		resolver: resolver,
		cache:    cache,
		graph:    builder,
		bundler:  bundler,
		pools:    pools,
		reload:   reload,
		logger:   log,
		reporter: reporter,
		tracer:   tracer,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Root        string
	Entries     []string
	Workers     int
	KeepWorkers bool
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	BuildOptions
	DevServer bool
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Cache  bool
	Output bool
}

// Build runs a single build and tears the pipeline down afterwards.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	orch := a.newOrchestrator(opts, false, false)
	defer func() {
		_ = orch.Close()
	}()

	// Initialization failures are setup problems, not build failures; they
	// surface directly so the caller can log them.
	if err := orch.Initialize(ctx); err != nil {
		return err
	}
	if _, err := orch.Build(ctx); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

// Watch runs an initial build, then keeps rebuilding on file changes until
// the context is canceled. A failing build never stops the loop.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	orch := a.newOrchestrator(opts.BuildOptions, true, opts.DevServer)
	defer func() {
		_ = orch.Close()
	}()

	if err := orch.Initialize(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := orch.Build(ctx); err != nil {
			a.logger.Error(zerr.Wrap(err, "initial build failed"))
		}
		return nil
	})

	g.Go(func() error {
		if err := a.graph.Watch(ctx, rootDir(opts.Root)); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	})

	return g.Wait()
}

// Clean removes cached state and build outputs based on the provided options.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	root := rootDir("")
	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.Cache {
		remove(filepath.Join(root, domain.StitchDirName), "workspace cache")
	}

	if opts.Output {
		cfg, err := a.resolver.Resolve(root)
		if err != nil {
			// Without a configuration there are no known output dirs.
			if !errors.Is(err, domain.ErrConfigNotFound) {
				errs = errors.Join(errs, err)
			}
			return errs
		}
		for _, target := range cfg.Targets {
			remove(filepath.Join(cfg.Root, target.OutputDir), "output for target "+target.Name)
		}
	}

	return errs
}

func (a *App) newOrchestrator(opts BuildOptions, watch, devServer bool) *orchestrator.Orchestrator {
	return orchestrator.New(
		orchestrator.Deps{
			Resolver: a.resolver,
			Cache:    a.cache,
			Graph:    a.graph,
			Bundler:  a.bundler,
			Pools:    a.pools,
			Reload:   a.reload,
			Logger:   a.logger,
			Reporter: a.reporter,
			Tracer:   a.tracer,
		},
		orchestrator.Options{
			RootDir:     rootDir(opts.Root),
			Entries:     opts.Entries,
			Watch:       watch,
			KeepWorkers: opts.KeepWorkers,
			DevServer:   devServer,
			Workers:     opts.Workers,
		},
	)
}

// rootDir normalizes the project root, defaulting to the working directory.
func rootDir(root string) string {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	return abs
}
