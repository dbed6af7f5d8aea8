// Package version reports the vext build version.
package version

import "runtime/debug"

// version is set at build time with -ldflags "-X github.com/indaco/vext/internal/version.version=1.0.0".
var version = ""

// GetVersion returns the linker-provided version, the module version from
// build info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return trimV(v)
		}
	}
	return "dev"
}

func trimV(v string) string {
	if len(v) > 0 && v[0] == 'v' {
		return v[1:]
	}
	return v
}
