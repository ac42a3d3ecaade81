package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/moderation-backend/internal/app.Version=1.0.0"
//
// Without ldflags, Commit and BuildTime fall back to the VCS stamp Go embeds
// in binaries built from a checkout.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs, the
// health endpoint and modctl --version.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = vcsStamp(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// vcsStamp fills commit and built from build settings when they are unset.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && len(s.Value) >= 12 {
				commit = s.Value[:12]
			}
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && commit != "unknown" && Commit == "unknown" {
		commit += "-dirty"
	}
	return commit, built
}
