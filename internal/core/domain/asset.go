// Package domain contains the core types of the stitch bundling pipeline.
package domain

// AssetKind classifies a source file in the dependency graph.
type AssetKind string

const (
	// KindScript is a JavaScript/TypeScript-like source file.
	KindScript AssetKind = "script"
	// KindStyle is a stylesheet source file.
	KindStyle AssetKind = "style"
	// KindRaw is any asset that is copied through without dependency scanning.
	KindRaw AssetKind = "raw"
)

// Asset is one source file plus its resolved metadata as tracked in the graph.
type Asset struct {
	// ID is the root-relative path of the asset, interned because the same
	// path appears in the graph, in bundles and in fingerprint records.
	ID InternedString
	// AbsPath is the absolute filesystem path.
	AbsPath string
	Kind    AssetKind
	// ContentHash is the xxhash fingerprint of the file content at scan time.
	ContentHash string
	// Dependencies are the IDs of assets this asset references.
	Dependencies []InternedString
}

// AssetGraph is the dependency graph produced by the graph builder.
// The orchestrator borrows it for one build and only hands it to the grouper.
type AssetGraph struct {
	Root    string
	Entries []InternedString
	assets  map[InternedString]*Asset
	order   []InternedString
}

// NewAssetGraph creates an empty asset graph rooted at the given directory.
func NewAssetGraph(root string) *AssetGraph {
	return &AssetGraph{
		Root:   root,
		assets: make(map[InternedString]*Asset),
	}
}

// AddAsset inserts an asset into the graph. Re-adding an ID replaces the
// previous asset but keeps its original position in the insertion order.
func (g *AssetGraph) AddAsset(a *Asset) {
	if _, ok := g.assets[a.ID]; !ok {
		g.order = append(g.order, a.ID)
	}
	g.assets[a.ID] = a
}

// AddEntry marks an asset ID as an entry point.
func (g *AssetGraph) AddEntry(id InternedString) {
	g.Entries = append(g.Entries, id)
}

// Asset returns the asset with the given ID, if present.
func (g *AssetGraph) Asset(id InternedString) (*Asset, bool) {
	a, ok := g.assets[id]
	return a, ok
}

// Len returns the number of assets in the graph.
func (g *AssetGraph) Len() int {
	return len(g.assets)
}

// Assets returns all assets in insertion order.
func (g *AssetGraph) Assets() []*Asset {
	out := make([]*Asset, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.assets[id])
	}
	return out
}

// Reachable returns the IDs reachable from the given entry, the entry itself
// included, in BFS order. Unknown IDs are skipped.
func (g *AssetGraph) Reachable(entry InternedString) []InternedString {
	var out []InternedString
	visited := map[InternedString]bool{entry: true}
	queue := []InternedString{entry}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		a, ok := g.assets[id]
		if !ok {
			continue
		}
		out = append(out, id)

		for _, dep := range a.Dependencies {
			if !visited[dep] {
				visited[dep] = true
				queue = append(queue, dep)
			}
		}
	}
	return out
}
