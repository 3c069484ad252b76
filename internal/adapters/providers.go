package adapters

import (
	"log/slog"

	"github.com/google/wire"
	internalconfig "github.com/libra-community/libra-cli/internal/adapters/config"
	"github.com/libra-community/libra-cli/internal/adapters/fs"
	"github.com/libra-community/libra-cli/internal/adapters/interactive"
	"github.com/libra-community/libra-cli/internal/adapters/progress"
	"github.com/libra-community/libra-cli/internal/adapters/rest"
	"github.com/libra-community/libra-cli/internal/config"
	domainconfig "github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ProvideHomeDir provides the user's home directory, or "" when it cannot be determined
func ProvideHomeDir(log *slog.Logger) string {
	home, err := homedir.Dir()
	if err != nil {
		log.Debug("unable to determine home directory", "error", err)
		return ""
	}
	return home
}

// ProvideNodeConfig resolves the node URL from NODE_URL or the node settings file
func ProvideNodeConfig(v *viper.Viper, cfg *domainconfig.RuntimeConfig, log *slog.Logger) *config.NodeConfig {
	return config.NewNodeConfig(v, cfg.NodeConfigPath, config.WithLogger(log))
}

// ProvideViewClient creates the REST client, preferring --url over the resolved node URL
func ProvideViewClient(cfg *domainconfig.RuntimeConfig, node *config.NodeConfig, log *slog.Logger) *rest.Client {
	url := node.NodeURL
	if cfg.NodeURL != "" {
		url = cfg.NodeURL
	}
	return rest.NewClient(url, log)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewGlobalConfigStoreAdapter,
	wire.Bind(new(usecase.GlobalConfigRepository), new(*fs.GlobalConfigStoreAdapter)),

	fs.NewCliConfigStoreAdapter,
	wire.Bind(new(usecase.CliConfigRepository), new(*fs.CliConfigStoreAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewWorkspaceLocator,
	wire.Bind(new(usecase.ConfigLocator), new(*internalconfig.WorkspaceLocator)),
	ProvideNodeConfig,
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.ProfilePrompter), new(*interactive.PrompterAdapter)),
	progress.ProvideProgressSink,
)

// RestSet provides node REST implementations
var RestSet = wire.NewSet(
	ProvideViewClient,
	wire.Bind(new(usecase.ViewClient), new(*rest.Client)),
	wire.Bind(new(usecase.NodeChecker), new(*rest.Client)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideHomeDir,
	FSSet,
	ConfigSet,
	InteractiveSet,
	RestSet,
)
