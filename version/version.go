package version

import "runtime/debug"

// Version can be set at build time, for example:
// go build -ldflags "-X github.com/vsariola/transposer/version.Version=$(git describe --dirty)" ./cmd/transposer

var Version string

// Hash is the short VCS revision the binary was built from, with a "-dirty"
// suffix for modified trees, or "" when no build info is embedded.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	revision, modified := "", false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		return revision + "-dirty"
	}
	return revision
}()

// VersionOrHash is Version when set and Hash otherwise.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	return "(devel)"
}()
