package utils

import (
	"runtime/debug"
	"strings"
)

// version is set via ldflags on release builds
var version string

// GetVersion returns the version of the binary. Falls back to Go's
// build info when no ldflags version was injected, then to "unknown".
// Any leading "v" prefix is stripped.
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		} else {
			v = "unknown"
		}
	}
	return strings.TrimPrefix(v, "v")
}
