package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	mode, err := ParseSearchMode(v.GetString("search_mode"))
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		SearchMode:     mode,
		Global:         v.GetBool("global"),
		NodeConfigPath: v.GetString("node_config"),
		NodeURL:        v.GetString("url"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
	}

	if cfg.NodeConfigPath == "" {
		cfg.NodeConfigPath = DefaultNodeConfigPath
	}

	return cfg, nil
}

// ParseSearchMode maps the --search-mode value to a ConfigSearchMode
func ParseSearchMode(s string) (config.ConfigSearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "parents":
		return config.CurrentDirAndParents, nil
	case "current":
		return config.CurrentDir, nil
	default:
		return config.CurrentDir, fmt.Errorf("unknown search mode %q (expected current or parents)", s)
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("LIBRA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	_ = v.BindEnv("node_url", NodeURLEnv)

	// Set defaults
	v.SetDefault("search_mode", "parents")
	v.SetDefault("node_config", DefaultNodeConfigPath)
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
			if err != nil {
				panic(err)
			}
		})
	}

	return v
}

// LoadDotEnv loads dir/.env into the process environment. Variables that are already
// set keep their value; a missing file is not an error.
func LoadDotEnv(dir string) error {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return nil
}
