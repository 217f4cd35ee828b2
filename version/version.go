package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set during build time
var (
	// Version is the current version
	Version = "0.0.0"

	// Branch is current branch name the code is built off.
	Branch = "unknown"

	// Revision is the short commit hash of source tree
	Revision = "unknown"

	// BuiltAt is the build time
	BuiltAt = "unknown"
)

// APIVersion is the path segment of the public API.
const APIVersion = "v1"

// Info contains version information
type Info struct {
	Version    string `json:"version"`
	APIVersion string `json:"api_version"`
	Branch     string `json:"branch"`
	Revision   string `json:"revision"`
	BuiltAt    string `json:"built_at"`
	GoVersion  string `json:"go_version"`
}

// GetVersionInfo returns the linked version information. Revision and build
// time fall back to the VCS stamp of the binary when not set by ldflags.
func GetVersionInfo() Info {
	info := Info{
		Version:    Version,
		APIVersion: APIVersion,
		Branch:     Branch,
		Revision:   Revision,
		BuiltAt:    BuiltAt,
		GoVersion:  runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Revision == "unknown" && len(s.Value) >= 7 {
					info.Revision = s.Value[:7]
				}
			case "vcs.time":
				if info.BuiltAt == "unknown" {
					info.BuiltAt = s.Value
				}
			}
		}
	}
	return info
}

// String returns a string representation of version information
func (i Info) String() string {
	return fmt.Sprintf("Version: %s\nAPI Version: %s\nBranch: %s\nRevision: %s\nBuilt At: %s\nGo Version: %s",
		i.Version, i.APIVersion, i.Branch, i.Revision, i.BuiltAt, i.GoVersion)
}

// JSON returns a JSON representation of version information
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
