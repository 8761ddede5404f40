package domain

// Bundle is a group of assets destined for one output artifact for one target.
type Bundle struct {
	// ID uniquely identifies the bundle within a BundleGraph,
	// conventionally "<target>/<output name>".
	ID string
	// Target names the build target this bundle belongs to.
	Target string
	// OutputName is the file name of the produced artifact, relative to the
	// target's output directory.
	OutputName string
	// Assets are the member asset IDs in deterministic packaging order.
	Assets []InternedString
}

// BundleGraph is the complete ordered set of bundles produced for one build.
type BundleGraph struct {
	Bundles []Bundle
}

// Len returns the number of bundles.
func (bg *BundleGraph) Len() int {
	if bg == nil {
		return 0
	}
	return len(bg.Bundles)
}

// AssetCount returns the total number of member assets across all bundles.
func (bg *BundleGraph) AssetCount() int {
	n := 0
	for i := range bg.Bundles {
		n += len(bg.Bundles[i].Assets)
	}
	return n
}
