// Package version holds build metadata injected with -ldflags -X.
package version

import (
	"fmt"
	"runtime"
)

// Name is the binary name reported in version strings.
const Name = "wallhue"

var (
	// Version is set via -X github.com/jmylchreest/wallhue/internal/version.Version=x.y.z.
	Version = "dev"

	// Commit is set via -X github.com/jmylchreest/wallhue/internal/version.Commit=$(git rev-parse HEAD).
	Commit = "unknown"

	// Date is the RFC3339 build date.
	Date = "unknown"
)

// Info is the build metadata in structured form.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// GetInfo returns the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the long form used by `wallhue version`.
func String() string {
	info := GetInfo()
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
			Name, info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("%s version %s (%s, %s)", Name, info.Version, info.GoVersion, info.Platform)
}

// UserAgent returns the User-Agent sent with remote image requests.
func UserAgent() string {
	return Name + "/" + Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
