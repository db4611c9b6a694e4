package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/editorial-admin/internal/app.Version=1.4.0" ./cmd/server
//
// Commit and BuildTime fall back to the VCS stamp the Go toolchain embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported by startup logs, the
// health endpoint and `adminctl --version`.
func BuildVersion() string {
	commit, built := stamped(Commit, BuildTime, readVCS)
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func readVCS() map[string]string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	vcs := make(map[string]string)
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}
	return vcs
}

// stamped fills unknown commit and build time from the VCS settings.
func stamped(commit, built string, settings func() map[string]string) (string, string) {
	if commit != "unknown" && built != "unknown" {
		return commit, built
	}
	vcs := settings()
	if rev := vcs["vcs.revision"]; commit == "unknown" && rev != "" {
		commit = rev
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if vcs["vcs.modified"] == "true" {
			commit += "-dirty"
		}
	}
	if t := vcs["vcs.time"]; built == "unknown" && t != "" {
		built = t
	}
	return commit, built
}
