package sendgrid

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the library. It is injected during
// build time via ldflags; the value below is the fallback for development
// builds.
var Version = "1.0.0"

// GetVersion returns the current version string, preferring the module
// version recorded in the build info when available.
func GetVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/gsquire/sendgrid" && dep.Version != "(devel)" {
				return dep.Version
			}
		}
	}
	return Version
}

// UserAgent returns the fixed User-Agent string sent with every request.
func UserAgent() string {
	return fmt.Sprintf("sendgrid-go-client/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
