// Package version holds build information set at link time:
//
//	go build -ldflags "-X github.com/tsawler/paperlayout/internal/version.GitRelease=v1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	// GitRelease is the release tag, "dev" for local builds.
	GitRelease = "dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit date in RFC 3339.
	GitCommitDate = "unknown"
)

// GoInfo describes the toolchain and target platform.
var GoInfo = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("paperlayout %s (%s, %s)", GitRelease, GitCommit, GitCommitDate)
}
