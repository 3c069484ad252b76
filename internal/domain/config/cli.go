package config

import (
	"sort"

	"github.com/samber/lo"
)

const (
	// DefaultProfile is the profile used when no profile name is given
	DefaultProfile = "default"

	ConfigFolderName     = ".0L"
	ConfigFileName       = "config.yaml"
	LegacyConfigFileName = "config.yml"
	GlobalConfigFileName = "global_config.yaml"
)

// ConfigSearchMode selects which directory is consulted for the config folder
type ConfigSearchMode int

const (
	// CurrentDir only looks at the working directory
	CurrentDir ConfigSearchMode = iota
	// CurrentDirAndParents walks from the working directory up to the filesystem root
	CurrentDirAndParents
)

func (m ConfigSearchMode) String() string {
	switch m {
	case CurrentDir:
		return "current-dir"
	case CurrentDirAndParents:
		return "current-dir-and-parents"
	default:
		return "unknown"
	}
}

// CliConfig is the content of .0L/config.yaml
type CliConfig struct {
	Profiles map[string]ProfileConfig `yaml:"profiles,omitempty"`
}

// ProfileConfig is a named bundle of account and network settings
type ProfileConfig struct {
	Network        string `yaml:"network,omitempty"`
	PrivateKey     string `yaml:"private_key,omitempty"`
	PublicKey      string `yaml:"public_key,omitempty"`
	Account        string `yaml:"account,omitempty"`
	RestURL        string `yaml:"rest_url,omitempty"`
	FaucetURL      string `yaml:"faucet_url,omitempty"`
	DerivationPath string `yaml:"derivation_path,omitempty"`
}

// RemoveProfile deletes the named profile from the in-memory map and returns it.
// The second return value is false when no such profile exists.
func (c *CliConfig) RemoveProfile(name string) (*ProfileConfig, bool) {
	profile, ok := c.Profiles[name]
	if !ok {
		return nil, false
	}
	delete(c.Profiles, name)
	return &profile, true
}

// SetProfile adds or replaces a profile
func (c *CliConfig) SetProfile(name string, profile ProfileConfig) {
	if c.Profiles == nil {
		c.Profiles = make(map[string]ProfileConfig)
	}
	c.Profiles[name] = profile
}

// ProfileNames returns the profile names in sorted order
func (c *CliConfig) ProfileNames() []string {
	names := lo.Keys(c.Profiles)
	sort.Strings(names)
	return names
}
