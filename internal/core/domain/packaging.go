package domain

// OpPackageBundle is the named worker operation that packages one bundle.
const OpPackageBundle = "package-bundle"

// PackageArgs is the payload of one OpPackageBundle invocation.
type PackageArgs struct {
	Bundle Bundle
	Target Target
	// Graph is the asset graph the bundle was grouped from, borrowed for the
	// duration of the invocation.
	Graph *AssetGraph
	// Config is the resolved build configuration.
	Config *Config
}

// PackageResult is the outcome of one OpPackageBundle invocation.
type PackageResult struct {
	BundleID   string
	OutputPath string
	OutputHash string
	Size       int64
}
