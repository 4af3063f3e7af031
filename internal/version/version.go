// Package version provides application version and build info.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Overridden by ldflags at build time, e.g.
// -X github.com/memohai/crm/internal/version.Version=v1.2.0
var (
	Version    = "dev"
	CommitHash = ""
	BuildTime  = ""
)

// BuildInfo is the resolved version triple reported by `crm version` and at startup.
type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash,omitempty"`
	BuildTime  string `json:"build_time,omitempty"`
}

var resolveOnce sync.Once

// Get returns the build info, falling back to VCS settings embedded by the Go toolchain.
func Get() BuildInfo {
	resolveOnce.Do(func() {
		if CommitHash != "" {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				CommitHash = setting.Value
			case "vcs.time":
				if BuildTime == "" {
					BuildTime = setting.Value
				}
			}
		}
	})
	return BuildInfo{Version: Version, CommitHash: CommitHash, BuildTime: BuildTime}
}

// String renders "version (shorthash)".
func (b BuildInfo) String() string {
	if b.CommitHash == "" {
		return b.Version
	}
	short := b.CommitHash
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s)", b.Version, short)
}
