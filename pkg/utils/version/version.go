// Package version provides version information for the codestat application.
// It includes build-time information such as version, git commit, build date, etc.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion returns the version information
func GetVersion() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
	}
}

// GetVersionString returns a formatted version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("codestat has version %s built with %s from %s on %s (%s)",
		info.Version, info.GoVersion, info.GitCommit, info.BuildDate, info.Platform)
}

// GetShortVersionString returns a short version string
func GetShortVersionString() string {
	return fmt.Sprintf("codestat %s", Version)
}
