package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Config folder lookup
	SearchMode ConfigSearchMode
	Global     bool // Force the global config folder regardless of global_config.yaml

	// Node URL resolution
	NodeConfigPath string // Path to 0L.toml
	NodeURL        string // Explicit override from --url, skips resolution when set

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
}
