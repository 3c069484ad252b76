package config

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags records the values injected through -ldflags at build time
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}
