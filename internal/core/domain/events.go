package domain

// GraphEventKind discriminates the events emitted by the graph builder.
type GraphEventKind uint8

const (
	// GraphAssetTransformed reports that one asset was (re)processed.
	GraphAssetTransformed GraphEventKind = iota
	// GraphInvalidated reports that previously computed graph state is stale
	// and must be recomputed.
	GraphInvalidated
)

// GraphEvent is one event from the graph builder's subscription stream.
type GraphEvent struct {
	Kind GraphEventKind
	// Asset is set for GraphAssetTransformed events.
	Asset *Asset
	// Paths holds the changed file paths for GraphInvalidated events.
	Paths []string
}

// BuildNotification is the typed "bundled" event emitted by the orchestrator
// when a build commits. Notifications are emitted in commit order of the
// generation counter; superseded builds never emit one.
type BuildNotification struct {
	Generation  uint64
	BundleGraph *BundleGraph
}
