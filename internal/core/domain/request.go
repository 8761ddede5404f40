package domain

// BuildOptions are the runtime switches of one orchestrator instance.
type BuildOptions struct {
	// Watch keeps the orchestrator alive after the first build, rebuilding
	// on invalidation events.
	Watch bool
	// KeepWorkers disables the automatic pool release after a one-shot
	// build, so a follow-up build can reuse the warm pool.
	KeepWorkers bool
	// DevServer requests a live-reload channel wired to transformed-asset
	// events.
	DevServer bool
}

// BuildRequest is the immutable record assembled during initialization.
// It is owned exclusively by the orchestrator and never mutated afterwards.
type BuildRequest struct {
	Entries []string
	RootDir string
	Config  *Config
	Targets []Target
	Options BuildOptions
}
