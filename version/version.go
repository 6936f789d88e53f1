// Package version carries build identification, stamped at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/wheelhouse/storefront/version.Version=1.2.0"
package version

import (
	"runtime/debug"
	"time"
)

var (
	// Version is the release tag, or "dev" for untagged builds.
	Version = "dev"
	// Commit is the short VCS revision.
	Commit = ""
	// BuildTime is the RFC3339 build timestamp.
	BuildTime = ""
)

// Info is the build identification reported by the health endpoint and the
// startup log.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get assembles build info, falling back to the binary's embedded VCS data
// when ldflags were not supplied.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" && len(setting.Value) >= 7 {
					info.Commit = setting.Value[:7]
				}
			case "vcs.time":
				if info.BuildTime == "" {
					if _, err := time.Parse(time.RFC3339, setting.Value); err == nil {
						info.BuildTime = setting.Value
					}
				}
			}
		}
	}
	return info
}

// Short returns the version with the commit suffix when one is known.
func Short() string {
	info := Get()
	if info.Commit != "" {
		return info.Version + "+" + info.Commit
	}
	return info.Version
}
