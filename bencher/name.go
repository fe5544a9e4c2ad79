package bencher

import (
	"fmt"
	"runtime/debug"
)

// FormatFrameworkName fills a framework name template with two version
// strings, e.g. FormatFrameworkName("pgx v%s (%s)", "5.8.0", "h1:...").
// Purely a formatting operation: same inputs, same output.
func FormatFrameworkName(format, version, fileVersion string) string {
	return fmt.Sprintf(format, version, fileVersion)
}

// FrameworkName builds a display name from the version information the Go
// toolchain recorded in the running binary for the given module path. The
// module version and its checksum fill the template's two slots; modules not
// present in the build report placeholder values.
func FrameworkName(format, modulePath string) string {
	version, sum := "devel", "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path != modulePath {
				continue
			}
			version = dep.Version
			sum = dep.Sum
			if dep.Replace != nil {
				version = dep.Replace.Version
				sum = dep.Replace.Sum
			}
			break
		}
	}
	if sum == "" {
		sum = "unknown"
	}
	return FormatFrameworkName(format, version, sum)
}
