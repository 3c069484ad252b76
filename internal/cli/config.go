package cli

import (
	"errors"

	"github.com/libra-community/libra-cli/internal/adapters/interactive"
	"github.com/libra-community/libra-cli/internal/cli/render"
	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage libra CLI profiles",
		Long: `Manage CLI profiles stored in .0L/config.yaml

The config folder is looked up from the current directory upwards unless
--search-mode=current is given. If ~/.0L/global_config.yaml sets
config_type: global, or --global is passed, ~/.0L is used instead.

When run without subcommands, shows the default profile.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showProfile(cmd, "")
		},
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigShowCmd())
	cmd.AddCommand(NewConfigProfilesCmd())
	cmd.AddCommand(NewConfigExistsCmd())

	return cmd
}

// NewConfigInitCmd creates the config init subcommand
func NewConfigInitCmd() *cobra.Command {
	var (
		profile string
		values  config.ProfileConfig
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or replace a profile",
		Long: `Create or replace a profile in .0L/config.yaml in the current directory.
Missing values are prompted for unless --non-interactive is set.

Examples:
  libra config init
  libra config init --profile testnet --rest-url http://localhost:8080/ --non-interactive`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InitConfig.Run(cmd.Context(), usecase.InitConfigParams{
				Profile: profile,
				Values:  values,
			})
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderInit(result)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", config.DefaultProfile, "Profile to create or replace")
	cmd.Flags().StringVar(&values.RestURL, "rest-url", "", "Node REST endpoint")
	cmd.Flags().StringVar(&values.Network, "network", "", "Network name")
	cmd.Flags().StringVar(&values.Account, "account", "", "Account address")
	cmd.Flags().StringVar(&values.PrivateKey, "private-key", "", "Hex encoded private key")
	cmd.Flags().StringVar(&values.PublicKey, "public-key", "", "Hex encoded public key")

	return cmd
}

// NewConfigShowCmd creates the config show subcommand
func NewConfigShowCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Show a profile",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showProfile(cmd, profile)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to show (defaults to 'default')")

	return cmd
}

// NewConfigProfilesCmd creates the config profiles subcommand
func NewConfigProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "profiles",
		Short:        "List all profiles",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProfiles.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderProfiles(result)
		},
	}
}

// NewConfigExistsCmd creates the config exists subcommand
func NewConfigExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "exists",
		Short:        "Report whether a config file exists",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			mode := app.Config.SearchMode
			path, err := app.ConfigStore.GetPath(mode)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderExists(app.ConfigStore.Exists(mode), path)
		},
	}
}

// showProfile displays a single profile, suggesting close names when it is missing
func showProfile(cmd *cobra.Command, name string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowProfile.Run(cmd.Context(), name)
	if err != nil {
		var notFound *domain.ProfileNotFoundError
		if errors.As(err, &notFound) {
			render.NewConfigRenderer(cmd.ErrOrStderr()).
				RenderSuggestions(interactive.SuggestProfiles(notFound.Name, notFound.Available))
		}
		return err
	}

	renderer := render.NewConfigRenderer(cmd.OutOrStdout())
	return renderer.RenderProfile(result)
}
