package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// GlobalConfigStoreAdapter reads global_config.yaml from the global config folder
type GlobalConfigStoreAdapter struct {
	configPath string
}

// NewGlobalConfigStoreAdapter creates a new GlobalConfigStoreAdapter for a home directory.
// Without a home directory there is no global config and Load yields the defaults.
func NewGlobalConfigStoreAdapter(homeDir string) *GlobalConfigStoreAdapter {
	if homeDir == "" {
		return &GlobalConfigStoreAdapter{}
	}
	return &GlobalConfigStoreAdapter{
		configPath: filepath.Join(homeDir, config.ConfigFolderName, config.GlobalConfigFileName),
	}
}

// Load reads the global config; a missing file yields the defaults
func (s *GlobalConfigStoreAdapter) Load(ctx context.Context) (*config.GlobalConfig, error) {
	if s.configPath == "" {
		return &config.GlobalConfig{}, nil
	}

	data, err := os.ReadFile(s.configPath)
	if os.IsNotExist(err) {
		return &config.GlobalConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var globalConfig config.GlobalConfig
	if err := yaml.Unmarshal(data, &globalConfig); err != nil {
		return nil, &domain.ParseError{Path: s.configPath, Err: err}
	}

	switch globalConfig.Type() {
	case config.ConfigTypeWorkspace, config.ConfigTypeGlobal:
	default:
		return nil, fmt.Errorf("unknown config_type %q in %s", globalConfig.ConfigType, s.configPath)
	}

	return &globalConfig, nil
}

// GetPath returns the path to global_config.yaml
func (s *GlobalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

var _ usecase.GlobalConfigRepository = (*GlobalConfigStoreAdapter)(nil)
