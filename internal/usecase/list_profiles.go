package usecase

import (
	"context"

	"github.com/libra-community/libra-cli/internal/domain/config"
)

// ListProfilesResult contains the result of listing profiles
type ListProfilesResult struct {
	Names      []string
	Profiles   map[string]config.ProfileConfig
	ConfigPath string
}

// ListProfiles is a use case for listing all profiles in the config
type ListProfiles struct {
	store   CliConfigRepository
	runtime *config.RuntimeConfig
}

// NewListProfiles creates a new ListProfiles use case
func NewListProfiles(store CliConfigRepository, runtime *config.RuntimeConfig) *ListProfiles {
	return &ListProfiles{
		store:   store,
		runtime: runtime,
	}
}

// Run executes the list profiles use case
func (uc *ListProfiles) Run(ctx context.Context) (*ListProfilesResult, error) {
	cfg, err := uc.store.Load(ctx, uc.runtime.SearchMode)
	if err != nil {
		return nil, err
	}

	path, err := uc.store.GetPath(uc.runtime.SearchMode)
	if err != nil {
		return nil, err
	}

	return &ListProfilesResult{
		Names:      cfg.ProfileNames(),
		Profiles:   cfg.Profiles,
		ConfigPath: path,
	}, nil
}
