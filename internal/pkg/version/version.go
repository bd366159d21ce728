package version

import "runtime/debug"

// Set with -ldflags "-X macnetconfig/internal/pkg/version.tag=v1.2.3".
var tag = "none"

type gitInfo struct {
	Commit string
	Tag    string
	Dirty  bool
	Go     string
}

// GetGitInfo returns the version control metadata stamped into the binary
// by the Go toolchain, plus the release tag if one was set at link time.
func GetGitInfo() gitInfo {
	info := gitInfo{
		Commit: "unknown",
		Tag:    tag,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Go = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}

	return info
}
