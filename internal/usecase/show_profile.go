package usecase

import (
	"context"

	"github.com/libra-community/libra-cli/internal/domain/config"
)

// ShowProfileResult contains the result of showing a profile
type ShowProfileResult struct {
	Name    string
	Profile *config.ProfileConfig // nil when no name was given and no default profile exists
}

// ShowProfile is a use case for looking up a single profile
type ShowProfile struct {
	store   CliConfigRepository
	runtime *config.RuntimeConfig
}

// NewShowProfile creates a new ShowProfile use case
func NewShowProfile(store CliConfigRepository, runtime *config.RuntimeConfig) *ShowProfile {
	return &ShowProfile{
		store:   store,
		runtime: runtime,
	}
}

// Run executes the show profile use case
func (uc *ShowProfile) Run(ctx context.Context, name string) (*ShowProfileResult, error) {
	profile, err := uc.store.LoadProfile(ctx, name, uc.runtime.SearchMode)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = config.DefaultProfile
	}

	return &ShowProfileResult{
		Name:    name,
		Profile: profile,
	}, nil
}
