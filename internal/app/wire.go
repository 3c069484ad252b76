//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/libra-community/libra-cli/internal/adapters"
	"github.com/libra-community/libra-cli/internal/config"
	"github.com/libra-community/libra-cli/internal/logging"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewInitConfig,
		usecase.NewShowProfile,
		usecase.NewListProfiles,
		usecase.NewViewFunction,
		usecase.NewCheckNode,

		// App
		NewApp,
	)
	return nil, nil
}
