package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// LocatorFunc adapts a plain function to usecase.ConfigLocator
type LocatorFunc func(mode config.ConfigSearchMode) (string, error)

// ConfigFolder calls f(mode)
func (f LocatorFunc) ConfigFolder(mode config.ConfigSearchMode) (string, error) {
	return f(mode)
}

// CliConfigStoreAdapter implements CliConfigRepository on top of .0L/config.yaml
type CliConfigStoreAdapter struct {
	locator usecase.ConfigLocator
	log     *slog.Logger
}

// NewCliConfigStoreAdapter creates a new CliConfigStoreAdapter
func NewCliConfigStoreAdapter(locator usecase.ConfigLocator, log *slog.Logger) *CliConfigStoreAdapter {
	return &CliConfigStoreAdapter{
		locator: locator,
		log:     log,
	}
}

// Exists reports whether config.yaml or config.yml exist in the folder for mode.
// A folder that can't be resolved counts as missing.
func (s *CliConfigStoreAdapter) Exists(mode config.ConfigSearchMode) bool {
	folder, err := s.locator.ConfigFolder(mode)
	if err != nil {
		s.log.Debug("config folder not resolved", "mode", mode, "error", err)
		return false
	}
	return fileExists(filepath.Join(folder, config.ConfigFileName)) ||
		fileExists(filepath.Join(folder, config.LegacyConfigFileName))
}

// Load reads config.yaml, falling back to the legacy config.yml
func (s *CliConfigStoreAdapter) Load(ctx context.Context, mode config.ConfigSearchMode) (*config.CliConfig, error) {
	folder, err := s.locator.ConfigFolder(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config folder: %w", err)
	}

	configFile := filepath.Join(folder, config.ConfigFileName)
	legacyConfigFile := filepath.Join(folder, config.LegacyConfigFileName)

	switch {
	case fileExists(configFile):
		return readCliConfig(configFile)
	case fileExists(legacyConfigFile):
		s.log.Debug("using legacy config file", "path", legacyConfigFile)
		return readCliConfig(legacyConfigFile)
	default:
		return nil, &domain.ConfigNotFoundError{Path: configFile}
	}
}

// LoadProfile loads the config and removes the named profile from it.
// An empty name selects the default profile, which may be absent.
func (s *CliConfigStoreAdapter) LoadProfile(ctx context.Context, name string, mode config.ConfigSearchMode) (*config.ProfileConfig, error) {
	cfg, err := s.Load(ctx, mode)
	if err != nil {
		var notFound *domain.ConfigNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w, have you run `libra config init`?", err)
		}
		return nil, err
	}

	if name == "" {
		profile, _ := cfg.RemoveProfile(config.DefaultProfile)
		return profile, nil
	}

	available := cfg.ProfileNames()
	profile, ok := cfg.RemoveProfile(name)
	if !ok {
		return nil, &domain.ProfileNotFoundError{Name: name, Available: available}
	}
	return profile, nil
}

// Save writes config.yaml in the current directory's config folder with owner-only
// permissions and removes a legacy config.yml next to it.
func (s *CliConfigStoreAdapter) Save(ctx context.Context, cfg *config.CliConfig) error {
	folder, err := s.locator.ConfigFolder(config.CurrentDir)
	if err != nil {
		return fmt.Errorf("failed to resolve config folder: %w", err)
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize config: %v", domain.ErrSerialization, err)
	}

	configFile := filepath.Join(folder, config.ConfigFileName)
	if err := WriteUserOnlyFile(configFile, data); err != nil {
		return err
	}

	legacyConfigFile := filepath.Join(folder, config.LegacyConfigFileName)
	if fileExists(legacyConfigFile) {
		s.log.Info("Removing legacy config file", "file", config.LegacyConfigFileName)
		if err := os.Remove(legacyConfigFile); err != nil {
			s.log.Debug("failed to remove legacy config file", "error", err)
		}
	}

	return nil
}

// GetPath returns the path config.yaml has for mode
func (s *CliConfigStoreAdapter) GetPath(mode config.ConfigSearchMode) (string, error) {
	folder, err := s.locator.ConfigFolder(mode)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config folder: %w", err)
	}
	return filepath.Join(folder, config.ConfigFileName), nil
}

func readCliConfig(path string) (*config.CliConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the config locator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if !utf8.Valid(data) {
		return nil, &domain.EncodingError{Path: path}
	}

	var cfg config.CliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	return &cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Ensure CliConfigStoreAdapter implements CliConfigRepository
var _ usecase.CliConfigRepository = (*CliConfigStoreAdapter)(nil)
