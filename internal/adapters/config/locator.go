package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
)

// WorkspaceLocator resolves the .0L config folder according to global_config.yaml
type WorkspaceLocator struct {
	global  usecase.GlobalConfigRepository
	homeDir string
	force   bool
	getwd   func() (string, error)
}

// NewWorkspaceLocator creates a locator. When cfg.Global is set the global folder is
// used regardless of global_config.yaml.
func NewWorkspaceLocator(global usecase.GlobalConfigRepository, homeDir string, cfg *config.RuntimeConfig) *WorkspaceLocator {
	return &WorkspaceLocator{
		global:  global,
		homeDir: homeDir,
		force:   cfg.Global,
		getwd:   os.Getwd,
	}
}

// ConfigFolder returns the config folder for mode
func (l *WorkspaceLocator) ConfigFolder(mode config.ConfigSearchMode) (string, error) {
	if l.force {
		return l.globalFolder()
	}

	globalConfig, err := l.global.Load(context.Background())
	if err != nil {
		return "", err
	}
	if globalConfig.Type() == config.ConfigTypeGlobal {
		return l.globalFolder()
	}

	cwd, err := l.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return FindWorkspaceFolder(cwd, mode), nil
}

func (l *WorkspaceLocator) globalFolder() (string, error) {
	if l.homeDir == "" {
		return "", fmt.Errorf("unable to find home directory for global config")
	}
	return filepath.Join(l.homeDir, config.ConfigFolderName), nil
}

// FindWorkspaceFolder returns start/.0L for CurrentDir. For CurrentDirAndParents it
// walks up from start and returns the first .0L directory found, or start/.0L if none.
func FindWorkspaceFolder(start string, mode config.ConfigSearchMode) string {
	fallback := filepath.Join(start, config.ConfigFolderName)
	if mode != config.CurrentDirAndParents {
		return fallback
	}

	dir := start
	for {
		candidate := filepath.Join(dir, config.ConfigFolderName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .0L
			return fallback
		}
		dir = parent
	}
}

var _ usecase.ConfigLocator = (*WorkspaceLocator)(nil)
