package version

import "runtime/debug"

type gitInfo struct {
	Tag    string
	Commit string
	Time   string
	Dirty  bool
}

// GetGitInfo returns the VCS metadata the Go toolchain stamped into the binary.
func GetGitInfo() gitInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return gitInfo{Tag: "none", Commit: "unknown"}
	}
	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) gitInfo {
	info := gitInfo{Tag: bi.Main.Version, Commit: "unknown"}
	if info.Tag == "" || info.Tag == "(devel)" {
		info.Tag = "none"
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}
