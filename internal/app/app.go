package app

import (
	"log/slog"

	"github.com/libra-community/libra-cli/internal/config"
	domainconfig "github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config     *domainconfig.RuntimeConfig
	NodeConfig *config.NodeConfig
	Log        *slog.Logger

	// Adapters used directly by commands
	ConfigStore usecase.CliConfigRepository

	// Use cases
	InitConfig   *usecase.InitConfig
	ShowProfile  *usecase.ShowProfile
	ListProfiles *usecase.ListProfiles
	ViewFunction *usecase.ViewFunction
	CheckNode    *usecase.CheckNode
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *domainconfig.RuntimeConfig,
	nodeConfig *config.NodeConfig,
	log *slog.Logger,
	configStore usecase.CliConfigRepository,
	initConfig *usecase.InitConfig,
	showProfile *usecase.ShowProfile,
	listProfiles *usecase.ListProfiles,
	viewFunction *usecase.ViewFunction,
	checkNode *usecase.CheckNode,
) (*App, error) {
	return &App{
		Config:       cfg,
		NodeConfig:   nodeConfig,
		Log:          log,
		ConfigStore:  configStore,
		InitConfig:   initConfig,
		ShowProfile:  showProfile,
		ListProfiles: listProfiles,
		ViewFunction: viewFunction,
		CheckNode:    checkNode,
	}, nil
}
