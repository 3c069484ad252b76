package usecase

import (
	"context"
	"encoding/json"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
)

// ConfigLocator resolves the config folder for a search mode
type ConfigLocator interface {
	ConfigFolder(mode config.ConfigSearchMode) (string, error)
}

// CliConfigRepository manages persistence of .0L/config.yaml
type CliConfigRepository interface {
	Exists(mode config.ConfigSearchMode) bool
	Load(ctx context.Context, mode config.ConfigSearchMode) (*config.CliConfig, error)
	LoadProfile(ctx context.Context, name string, mode config.ConfigSearchMode) (*config.ProfileConfig, error)
	Save(ctx context.Context, cfg *config.CliConfig) error
	GetPath(mode config.ConfigSearchMode) (string, error)
}

// GlobalConfigRepository reads ~/.0L/global_config.yaml
type GlobalConfigRepository interface {
	Load(ctx context.Context) (*config.GlobalConfig, error)
}

// ViewClient performs read-only function calls against a node
type ViewClient interface {
	View(ctx context.Context, req domain.ViewRequest) ([]json.RawMessage, error)
}

// NodeChecker reports whether a node answers and what ledger state it serves
type NodeChecker interface {
	LedgerInfo(ctx context.Context) (*domain.LedgerInfo, error)
}

// ProfilePrompter asks the user for missing profile fields
type ProfilePrompter interface {
	PromptProfile(ctx context.Context, name string, current config.ProfileConfig) (config.ProfileConfig, error)
}

// ProgressSink receives progress updates for long running calls
type ProgressSink interface {
	Start(message string)
	Stop()
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) Start(string) {}
func (NopProgress) Stop()        {}
