package config

const (
	// Filesystem defaults, relative to the working directory. The tools
	// are run from a competition checkout, so nothing lands in /etc.
	DefaultConfigPath   = "forkcomp.yml"
	DefaultJournalPath  = "forkcomp.db"
	DefaultManifestPath = "manifest.json"

	// API defaults
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultTimeoutSec = 30
)
