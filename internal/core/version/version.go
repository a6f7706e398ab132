// Package version provides build information for the command line tools
package version

// BuildInfo holds version information about a tool build
type BuildInfo struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for tool. The version, commit and date
// variables are set at build time:
//
//	-ldflags "-X movielens/internal/core/version.version=v0.1.0 -X movielens/internal/core/version.commit=abcd"
func Info(tool string) BuildInfo {
	return BuildInfo{
		Tool:    tool,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
