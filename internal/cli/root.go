package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/libra-community/libra-cli/internal/app"
	"github.com/libra-community/libra-cli/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "libra",
		Short: "Command line tools for the Libra network",
		Long: `libra manages local CLI profiles stored in .0L/config.yaml and
calls read-only view functions on a Libra node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			if cwd, err := os.Getwd(); err == nil {
				if err := config.LoadDotEnv(cwd); err != nil {
					return err
				}
			}

			v := config.SetupViper(cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				parent := ctx
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(parent, appInstance.Config.Timeout)
				// released by Execute whether or not the command succeeds
				context.AfterFunc(parent, cancel)
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for the whole command (default 5m)")
	rootCmd.PersistentFlags().String("search-mode", "parents", "Where to look for .0L/config.yaml: current or parents")
	rootCmd.PersistentFlags().Bool("global", false, "Use the global config in ~/.0L")
	rootCmd.PersistentFlags().String("node-config", config.DefaultNodeConfigPath, "Node settings file with upstream_nodes")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "Configuration Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "node",
		Title: "Node Commands",
	})

	configCmd := NewConfigCmd()
	configCmd.GroupID = "config"
	rootCmd.AddCommand(configCmd)

	nodeURLCmd := NewNodeURLCmd()
	nodeURLCmd.GroupID = "node"
	rootCmd.AddCommand(nodeURLCmd)

	viewCmd := NewViewCmd()
	viewCmd.GroupID = "node"
	rootCmd.AddCommand(viewCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs rootCmd and releases the command context once it returns,
// including when a command fails.
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	ctx, release := context.WithCancel(ctx)
	defer release()
	return rootCmd.ExecuteContext(ctx)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
