// Package orchestrator sequences the bundling pipeline into builds.
//
// The orchestrator owns build lifecycle state and enforces the single-flight
// commit discipline: builds may overlap in execution, but only the build whose
// captured generation is still current at completion time commits its bundle
// graph and emits a notification. Everything else is discarded silently.
package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Phase is the lifecycle state of the orchestrator.
type Phase string

const (
	// PhaseUninitialized is the state before Initialize.
	PhaseUninitialized Phase = "Uninitialized"
	// PhaseInitializing is the transient state during Initialize.
	PhaseInitializing Phase = "Initializing"
	// PhaseIdle means no build is in flight.
	PhaseIdle Phase = "Idle"
	// PhaseBuilding means at least one build is in flight.
	PhaseBuilding Phase = "Building"
	// PhaseAborting means the orchestrator is closing while builds are
	// still settling; their results will be discarded.
	PhaseAborting Phase = "Aborting"
)

// notificationBuffer is the per-subscriber channel capacity. A subscriber
// that falls further behind loses notifications rather than stalling commits.
const notificationBuffer = 16

// Deps are the external collaborators consumed by the orchestrator.
type Deps struct {
	Resolver ports.ConfigResolver
	Cache    ports.CacheStore
	Graph    ports.GraphBuilder
	Bundler  ports.Bundler
	Pools    ports.PoolRegistry
	// Reload is the optional live-reload channel, started during
	// initialization when Options.DevServer is set.
	Reload   ports.ReloadChannel
	Logger   ports.Logger
	Reporter ports.Reporter
	Tracer   ports.Tracer
}

// Options configure one orchestrator instance.
type Options struct {
	RootDir string
	Entries []string
	// Explicit takes precedence over filesystem discovery when non-nil.
	Explicit *domain.Config
	Watch    bool
	// KeepWorkers disables the pool release after a one-shot build.
	KeepWorkers bool
	// DevServer wires asset-transformed events to the reload channel.
	DevServer bool
	// Workers is the pool size; zero lets the pool pick a default.
	Workers int
}

// Orchestrator drives builds of the bundling pipeline.
type Orchestrator struct {
	deps Deps
	opts Options

	mu             sync.Mutex
	phase          Phase
	generation     uint64
	inFlight       int
	rebuildPending bool
	closed         bool
	lastGraph      *domain.BundleGraph
	lastErr        error
	req            *domain.BuildRequest
	pool           ports.PoolHandle
	poolReleased   bool

	subsMu sync.Mutex
	subs   []chan domain.BuildNotification

	runCtx      context.Context
	events      <-chan domain.GraphEvent
	quit        chan struct{}
	loopDone    chan struct{}
	loopStarted bool
}

// New creates an orchestrator. Nil Reporter and Tracer are replaced with
// no-op implementations; everything else is required.
func New(deps Deps, opts Options) *Orchestrator {
	if deps.Reporter == nil {
		deps.Reporter = noopReporter{}
	}
	if deps.Tracer == nil {
		deps.Tracer = noopTracer{}
	}
	return &Orchestrator{
		deps:     deps,
		opts:     opts,
		phase:    PhaseUninitialized,
		quit:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
}

// Initialize resolves configuration and targets, ensures the cache root,
// acquires the shared worker pool and subscribes to graph events. It is not
// re-entrant: a second call fails fast instead of racing the first.
func (o *Orchestrator) Initialize(ctx context.Context) error {
	o.mu.Lock()
	switch o.phase {
	case PhaseUninitialized:
		o.phase = PhaseInitializing
	case PhaseInitializing:
		o.mu.Unlock()
		return domain.ErrAlreadyInitializing
	default:
		o.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	o.mu.Unlock()

	if err := o.initialize(ctx); err != nil {
		o.mu.Lock()
		o.phase = PhaseUninitialized
		o.mu.Unlock()
		return err
	}

	o.mu.Lock()
	o.phase = PhaseIdle
	o.mu.Unlock()
	return nil
}

func (o *Orchestrator) initialize(ctx context.Context) error {
	cacheDir := filepath.Join(o.opts.RootDir, domain.DefaultCachePath())
	if err := o.deps.Cache.EnsureCacheDir(cacheDir); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	var cfg *domain.Config
	var err error
	if o.opts.Explicit != nil {
		cfg, err = o.deps.Resolver.Create(o.opts.Explicit, o.opts.RootDir)
	} else {
		cfg, err = o.deps.Resolver.Resolve(o.opts.RootDir)
	}
	if err != nil {
		return err
	}

	targets := cfg.Targets
	if len(targets) == 0 {
		targets, err = o.deps.Resolver.ResolveTargets(o.opts.RootDir)
		if err != nil {
			return err
		}
	}
	if len(targets) == 0 {
		return zerr.With(domain.ErrNoTargets, "root", o.opts.RootDir)
	}

	entries := o.opts.Entries
	if len(entries) == 0 {
		entries = cfg.Entries
	}
	if len(entries) == 0 {
		return zerr.With(domain.ErrNoEntries, "root", o.opts.RootDir)
	}

	pool, err := o.deps.Pools.AcquireShared(cfg.Key(), ports.PoolOptions{Workers: o.opts.Workers})
	if err != nil {
		return zerr.Wrap(err, domain.ErrPoolCreateFailed.Error())
	}

	if o.opts.DevServer && o.deps.Reload != nil {
		if err := o.deps.Reload.Start(ctx, cfg); err != nil {
			_ = pool.Release()
			return zerr.Wrap(err, domain.ErrDevServerStartFailed.Error())
		}
	}

	o.mu.Lock()
	o.runCtx = ctx
	o.pool = pool
	o.req = &domain.BuildRequest{
		Entries: entries,
		RootDir: o.opts.RootDir,
		Config:  cfg,
		Targets: targets,
		Options: domain.BuildOptions{
			Watch:       o.opts.Watch,
			KeepWorkers: o.opts.KeepWorkers,
			DevServer:   o.opts.DevServer,
		},
	}
	o.events = o.deps.Graph.Subscribe()
	o.loopStarted = true
	o.mu.Unlock()

	go o.eventLoop()
	return nil
}

// Run is the conventional entry point: initialize, run the first build and
// leave the rebuild loop subscribed. In watch mode the caller keeps the
// process alive and calls Close on shutdown.
func (o *Orchestrator) Run(ctx context.Context) (*domain.BundleGraph, error) {
	if err := o.Initialize(ctx); err != nil {
		return nil, err
	}
	return o.Build(ctx)
}

// Build runs one build. It may be called while a previous build is still in
// flight: the new call captures a fresh generation and the in-flight build's
// result is discarded at completion time. A superseded call returns
// (nil, nil); supersession is not a failure and is never surfaced.
func (o *Orchestrator) Build(ctx context.Context) (*domain.BundleGraph, error) {
	o.mu.Lock()
	switch o.phase {
	case PhaseIdle, PhaseBuilding:
	default:
		o.mu.Unlock()
		return nil, domain.ErrNotInitialized
	}
	o.generation++
	gen := o.generation
	o.phase = PhaseBuilding
	o.inFlight++
	req := o.req
	pool := o.pool
	o.mu.Unlock()

	o.deps.Reporter.OnBuildStart(gen)
	start := time.Now()

	bg, err := o.execute(ctx, req, pool)
	committed := o.settle(gen, bg, err)

	o.deps.Reporter.OnBuildComplete(gen, time.Since(start), committed, err)

	if !committed {
		// Superseded: a newer build owns the outcome now.
		return nil, nil
	}
	o.maybeReleasePool()
	if err != nil {
		return nil, err
	}
	return bg, nil
}

// execute runs the three build steps against the collaborators. Every step
// may suspend awaiting an external collaborator; cancellation is advisory
// through ctx.
func (o *Orchestrator) execute(
	ctx context.Context,
	req *domain.BuildRequest,
	pool ports.PoolHandle,
) (*domain.BundleGraph, error) {
	ctx, span := o.deps.Tracer.Start(ctx, "build")
	defer span.End()

	graph, err := o.deps.Graph.Build(ctx, req.Entries, req.Targets, req.Config)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrGraphBuildFailed.Error())
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("stitch.assets", graph.Len())
	o.deps.Reporter.OnGraphReady(graph.Len())

	bg, err := o.deps.Bundler.Group(graph, req.Config)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrBundlingFailed.Error())
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("stitch.bundles", bg.Len())

	if err := o.packageBundles(ctx, req, pool, graph, bg); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return bg, nil
}

type packResult struct {
	bundleID string
	duration time.Duration
	err      error
}

// packageBundles fans one packaging invocation per bundle out to the worker
// pool and joins all results. A failing task does not cancel its siblings;
// the build reports PackagingFailed only once every task has settled.
func (o *Orchestrator) packageBundles(
	ctx context.Context,
	req *domain.BuildRequest,
	pool ports.PoolHandle,
	graph *domain.AssetGraph,
	bg *domain.BundleGraph,
) error {
	results := make(chan packResult, len(bg.Bundles))

	for i := range bg.Bundles {
		b := bg.Bundles[i]
		go func() {
			start := time.Now()
			_, err := pool.Invoke(ctx, domain.OpPackageBundle, domain.PackageArgs{
				Bundle: b,
				Target: o.targetFor(req, b.Target),
				Graph:  graph,
				Config: req.Config,
			})
			results <- packResult{bundleID: b.ID, duration: time.Since(start), err: err}
		}()
	}

	var errs error
	for range bg.Bundles {
		res := <-results
		o.deps.Reporter.OnBundleComplete(res.bundleID, res.duration, res.err)
		if res.err != nil {
			errs = errors.Join(errs, zerr.With(
				zerr.Wrap(res.err, domain.ErrPackagingFailed.Error()),
				"bundle", res.bundleID,
			))
		}
	}
	return errs
}

func (o *Orchestrator) targetFor(req *domain.BuildRequest, name string) domain.Target {
	for _, t := range req.Targets {
		if t.Name == name {
			return t
		}
	}
	return domain.DefaultTarget()
}

// settle decides whether a finished build is allowed to commit. Only the
// build matching the current generation mutates shared state and notifies
// subscribers; a superseded build changes nothing.
func (o *Orchestrator) settle(gen uint64, bg *domain.BundleGraph, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.inFlight--
	committed := gen == o.generation && !o.closed

	if committed {
		if err != nil {
			o.lastErr = err
		} else {
			o.lastGraph = bg
			o.lastErr = nil
		}
		o.phase = PhaseIdle
		if err == nil {
			o.notifyLocked(domain.BuildNotification{Generation: gen, BundleGraph: bg})
		}
	}

	if o.inFlight == 0 && o.rebuildPending && !o.closed {
		o.rebuildPending = false
		go o.rebuild()
	}
	return committed
}

// notifyLocked emits the bundled notification to all subscribers in commit
// order. Sends are non-blocking: a slow subscriber drops notifications
// instead of delaying the build path. Caller holds o.mu.
func (o *Orchestrator) notifyLocked(n domain.BuildNotification) {
	o.subsMu.Lock()
	defer o.subsMu.Unlock()
	for _, ch := range o.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribe returns a channel of bundled notifications. The channel is
// buffered; notifications to a full channel are dropped.
func (o *Orchestrator) Subscribe() <-chan domain.BuildNotification {
	ch := make(chan domain.BuildNotification, notificationBuffer)
	o.subsMu.Lock()
	o.subs = append(o.subs, ch)
	o.subsMu.Unlock()
	return ch
}

// eventLoop wires graph builder events into the orchestrator: transformed
// assets feed the live-reload channel, invalidations trigger rebuilds.
func (o *Orchestrator) eventLoop() {
	defer close(o.loopDone)
	for {
		select {
		case <-o.quit:
			return
		case ev, ok := <-o.events:
			if !ok {
				return
			}
			switch ev.Kind {
			case domain.GraphAssetTransformed:
				if o.opts.DevServer && o.deps.Reload != nil && ev.Asset != nil {
					o.deps.Reload.Notify(ev.Asset)
				}
			case domain.GraphInvalidated:
				if o.opts.Watch && o.relevantInvalidation(ev.Paths) {
					o.triggerRebuild()
				}
			}
		}
	}
}

// relevantInvalidation reports whether any changed path lies outside the
// configured target output directories. Packaging writes into those
// directories under the watched root, so without this check every build
// would invalidate itself and rebuild forever.
func (o *Orchestrator) relevantInvalidation(paths []string) bool {
	if len(paths) == 0 {
		return true
	}

	o.mu.Lock()
	req := o.req
	o.mu.Unlock()
	if req == nil {
		return true
	}

	outputs := make([]string, 0, len(req.Targets))
	for _, target := range req.Targets {
		outputs = append(outputs, filepath.Join(req.Config.Root, target.OutputDir)+string(filepath.Separator))
	}

	for _, path := range paths {
		self := false
		for _, out := range outputs {
			if strings.HasPrefix(path, out) || path+string(filepath.Separator) == out {
				self = true
				break
			}
		}
		if !self {
			return true
		}
	}
	return false
}

// triggerRebuild coalesces invalidation bursts. While a build is in flight it
// supersedes that build's generation and marks a single pending rebuild; the
// pending rebuild starts once the in-flight work settles. N invalidations
// during one build therefore cause at most one follow-up build.
func (o *Orchestrator) triggerRebuild() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	if o.inFlight > 0 {
		o.generation++
		o.rebuildPending = true
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()
	go o.rebuild()
}

func (o *Orchestrator) rebuild() {
	o.mu.Lock()
	ctx := o.runCtx
	o.mu.Unlock()
	if ctx == nil {
		return
	}

	if _, err := o.Build(ctx); err != nil {
		// A rebuild error must not kill the watch loop; it is recorded in
		// lastErr and the orchestrator keeps listening for invalidations.
		o.deps.Logger.Error(zerr.Wrap(err, "rebuild failed"))
	}
}

// maybeReleasePool releases the worker pool reference after a one-shot build
// unless teardown was explicitly disabled.
func (o *Orchestrator) maybeReleasePool() {
	if o.opts.Watch || o.opts.KeepWorkers {
		return
	}
	o.releasePool()
}

func (o *Orchestrator) releasePool() {
	o.mu.Lock()
	pool := o.pool
	released := o.poolReleased
	o.poolReleased = true
	o.mu.Unlock()

	if released || pool == nil {
		return
	}
	if err := pool.Release(); err != nil {
		o.deps.Logger.Error(zerr.Wrap(err, "failed to release worker pool"))
	}
}

// Pending reports whether a build is currently in flight.
func (o *Orchestrator) Pending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inFlight > 0
}

// LastError returns the most recent real build error, nil after a
// successful commit.
func (o *Orchestrator) LastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// LastBundleGraph returns the most recently committed bundle graph.
func (o *Orchestrator) LastBundleGraph() *domain.BundleGraph {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastGraph
}

// CurrentPhase returns the lifecycle phase.
func (o *Orchestrator) CurrentPhase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// Generation returns the current build generation.
func (o *Orchestrator) Generation() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generation
}

// Close tears the orchestrator down deterministically: the event loop stops,
// the pool reference is released (draining workers on the last reference)
// and the reload channel is stopped. In-flight builds settle as superseded.
func (o *Orchestrator) Close() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil
	}
	o.closed = true
	if o.inFlight > 0 {
		o.phase = PhaseAborting
	}
	loopStarted := o.loopStarted
	o.mu.Unlock()

	close(o.quit)
	if loopStarted {
		<-o.loopDone
	}

	o.releasePool()

	var errs error
	if o.opts.DevServer && o.deps.Reload != nil {
		if err := o.deps.Reload.Stop(); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to stop reload channel"))
		}
	}

	o.subsMu.Lock()
	for _, ch := range o.subs {
		close(ch)
	}
	o.subs = nil
	o.subsMu.Unlock()

	return errs
}

type noopReporter struct{}

func (noopReporter) OnBuildStart(uint64)                                {}
func (noopReporter) OnGraphReady(int)                                   {}
func (noopReporter) OnBundleComplete(string, time.Duration, error)      {}
func (noopReporter) OnBuildComplete(uint64, time.Duration, bool, error) {}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}
func (noopTracer) Shutdown(context.Context) error { return nil }

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
