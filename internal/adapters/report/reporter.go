// Package report provides a synchronous, line-oriented build reporter
// suitable for terminals and CI logs alike.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/ui/output"
	"go.trai.ch/stitch/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter with chronological output. Lines are
// written under a mutex so concurrent bundle completions never interleave.
type Reporter struct {
	out    io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewReporter creates a reporter writing to w, or stderr when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		out:    w,
		output: output.NewWithProfile(w, output.ColorProfileANSI),
	}
}

// OnBuildStart reports that a build generation began.
func (r *Reporter) OnBuildStart(generation uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.output.String(fmt.Sprintf("[build %d]", generation)).Faint().String()
	fmt.Fprintf(r.out, "%s starting\n", prefix)
}

// OnGraphReady reports the size of the scanned asset graph.
func (r *Reporter) OnGraphReady(assetCount int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "  scanned %d asset(s)\n", assetCount)
}

// OnBundleComplete reports one finished bundle.
func (r *Reporter) OnBundleComplete(bundleID string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		mark := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
		fmt.Fprintf(r.out, "  %s %s failed: %v\n", mark, bundleID, err)
		return
	}
	mark := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	fmt.Fprintf(r.out, "  %s %s (%s)\n", mark, bundleID, duration.Round(time.Millisecond))
}

// OnBuildComplete reports the outcome of a build generation. Superseded
// builds show up as discarded so watch-mode output explains itself.
func (r *Reporter) OnBuildComplete(generation uint64, duration time.Duration, committed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.output.String(fmt.Sprintf("[build %d]", generation)).Faint().String()

	switch {
	case !committed:
		fmt.Fprintf(r.out, "%s superseded, result discarded\n", prefix)
	case err != nil:
		mark := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
		fmt.Fprintf(r.out, "%s %s failed after %s: %v\n", prefix, mark, duration.Round(time.Millisecond), err)
	default:
		mark := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
		fmt.Fprintf(r.out, "%s %s done in %s\n", prefix, mark, duration.Round(time.Millisecond))
	}
}
