package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when neither an explicit configuration nor
	// a stitch.yaml could be resolved. Fatal for initialization.
	ErrConfigNotFound = zerr.New("could not find stitch configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoEntries is returned when a build is requested without entry files.
	ErrNoEntries = zerr.New("no entry files specified")

	// ErrNoTargets is returned when target resolution yields nothing.
	ErrNoTargets = zerr.New("no targets resolved")

	// ErrNotInitialized is returned when build() is called before initialize().
	ErrNotInitialized = zerr.New("orchestrator not initialized")

	// ErrAlreadyInitializing is returned when initialize() races a concurrent
	// initialize() on the same instance.
	ErrAlreadyInitializing = zerr.New("initialization already in progress")

	// ErrAlreadyInitialized is returned on repeated initialize() calls.
	ErrAlreadyInitialized = zerr.New("orchestrator already initialized")

	// ErrCacheDirCreateFailed is returned when the cache root cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrPoolCreateFailed is returned when the shared worker pool cannot be
	// acquired. Fatal for initialization.
	ErrPoolCreateFailed = zerr.New("failed to acquire worker pool")

	// ErrPoolReleased is returned when invoking an operation on a released
	// pool handle.
	ErrPoolReleased = zerr.New("worker pool handle already released")

	// ErrUnknownOperation is returned when a pool invocation names an
	// operation no worker implements.
	ErrUnknownOperation = zerr.New("unknown worker operation")

	// ErrWorkerPanic is returned when a worker operation panics. The panic is
	// contained in the worker; siblings are unaffected.
	ErrWorkerPanic = zerr.New("worker operation panicked")

	// ErrGraphBuildFailed is returned when the asset graph cannot be built.
	// Scoped to one build attempt.
	ErrGraphBuildFailed = zerr.New("asset graph construction failed")

	// ErrBundlingFailed is returned when grouping the asset graph into
	// bundles fails. Scoped to one build attempt.
	ErrBundlingFailed = zerr.New("bundle grouping failed")

	// ErrPackagingFailed is returned when one or more packaging tasks fail.
	// Scoped to one build attempt; carries the originating bundle id.
	ErrPackagingFailed = zerr.New("bundle packaging failed")

	// ErrEntryNotFound is returned when an entry file does not exist.
	ErrEntryNotFound = zerr.New("entry file not found")

	// ErrAssetReadFailed is returned when an asset file cannot be read.
	ErrAssetReadFailed = zerr.New("failed to read asset")

	// ErrEmptyAssetGraph is returned by the grouper when the asset graph has
	// no entries to bundle.
	ErrEmptyAssetGraph = zerr.New("asset graph has no entries")

	// ErrStoreReadFailed is returned when a cache record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache record")

	// ErrStoreMarshalFailed is returned when a cache record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrStoreUnmarshalFailed is returned when a cache record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache record")

	// ErrStoreWriteFailed is returned when a cache record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache record")

	// ErrOutputWriteFailed is returned when a packaged artifact cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output artifact")

	// ErrBuildExecutionFailed wraps any build error reported to the CLI layer.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrDevServerStartFailed is returned when the live-reload channel cannot
	// bind its listen address.
	ErrDevServerStartFailed = zerr.New("failed to start dev server")
)
