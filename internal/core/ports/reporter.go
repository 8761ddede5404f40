package ports

import "time"

// Reporter receives build progress callbacks. It decouples the orchestrator
// from presentation so the same event flow can drive terminal output in
// one-shot and watch mode alike.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnBuildStart is called when a build begins under the given generation.
	OnBuildStart(generation uint64)

	// OnGraphReady is called when the asset graph has been materialized.
	OnGraphReady(assetCount int)

	// OnBundleComplete is called when one packaging task settles.
	OnBundleComplete(bundleID string, duration time.Duration, err error)

	// OnBuildComplete is called when the build settles. committed is false
	// for superseded builds whose results were discarded.
	OnBuildComplete(generation uint64, duration time.Duration, committed bool, err error)
}
