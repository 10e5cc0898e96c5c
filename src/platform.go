package src

import (
	"os"
	"runtime"
	"strings"
)

// Platform carries the flags the titlebar needs to pick a layout variant.
type Platform struct {
	Mac     bool
	Windows bool
}

// DetectPlatform derives platform flags from a GOOS-like string. The
// OPDECK_PLATFORM variable (read through getenv so tests can inject) wins
// over the compiled target, which keeps layouts previewable anywhere.
func DetectPlatform(goos string, getenv func(string) string) Platform {
	if getenv != nil {
		if v := strings.TrimSpace(strings.ToLower(getenv("OPDECK_PLATFORM"))); v != "" {
			goos = v
		}
	}
	switch strings.ToLower(goos) {
	case "darwin", "mac", "macos":
		return Platform{Mac: true}
	case "windows":
		return Platform{Windows: true}
	default:
		return Platform{}
	}
}

// HostPlatform detects the platform of the running process.
func HostPlatform() Platform {
	return DetectPlatform(runtime.GOOS, os.Getenv)
}
