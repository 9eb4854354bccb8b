// Package version exposes the build identity of the ivtree binary,
// injected at link time via -ldflags.
package version

// Version, Commit and Date are overwritten at build time with
//
//	-ldflags "-X github.com/Sumatoshi-tech/ivtree/pkg/version.Version=... \
//	           -X .../version.Commit=... -X .../version.Date=..."
//
// and otherwise report a development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the three fields the way the CLI's version command
// prints them.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
