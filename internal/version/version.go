// Package version holds build metadata stamped in at link time.
package version

import "runtime/debug"

// Version is set at build time via ldflags. When built with plain
// `go install` it falls back to the module version from build info.
var Version = "dev"

// String returns the version to display to users.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
