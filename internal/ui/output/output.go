// Package output constructs termenv outputs with shared NO_COLOR and TTY
// handling so the reporter and logger render consistently.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile detects the terminal's capabilities, honoring NO_COLOR.
// Intended for interactive sessions; CI output should prefer
// ColorProfileANSI.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI pins the profile to plain ANSI, honoring NO_COLOR. CI
// systems disagree about color support beyond the 16 base colors, so ANSI
// is the portable choice for non-interactive output.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New returns a termenv output on w using the detected color profile.
// A nil writer falls back to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ColorProfile, opts)
}

// NewWithProfile is New with an explicit profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, profileFn, opts)
}

func newOutput(w io.Writer, profileFn func() termenv.Profile, opts []termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	opts = append(opts, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
	return termenv.NewOutput(w, opts...)
}
