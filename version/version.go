package version

import (
	"fmt"
	"runtime/debug"

	goversion "github.com/hashicorp/go-version"
)

// semVer is replaced at build time with -ldflags "-X github.com/proxati/oauth_capture/version.semVer=v1.2.3"
var semVer = "v0.1.0-dev"

// DefaultVersion is returned by Get when the embedded version string can't be parsed
var DefaultVersion = goversion.Must(goversion.NewVersion("0.0.0"))

// Get returns the parsed version of this build
func Get() *goversion.Version {
	v, err := goversion.NewVersion(semVer)
	if err != nil {
		return DefaultVersion
	}
	return v
}

// String returns a human-readable version string, including the VCS revision when the binary
// was built from a git checkout.
func String() string {
	out := "v" + Get().String()
	if rev := vcsRevision(); rev != "" {
		out = fmt.Sprintf("%s (%s)", out, rev)
	}
	return out
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
