package cli

import (
	"github.com/libra-community/libra-cli/internal/cli/render"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewViewCmd creates the view command
func NewViewCmd() *cobra.Command {
	var typeArgs, viewArgs string

	cmd := &cobra.Command{
		Use:   "view <function-id>",
		Short: "Call a read-only view function",
		Long: `Call a read-only view function on the node and print its return values.

The function id has the form <address>::<module>::<function>.
Type arguments and arguments are comma separated.

Examples:
  libra view 0x1::coin::balance --type-args 0x1::libra_coin::LibraCoin --args 0x1
  libra view 0x1::epoch_helper::get_current_epoch --url http://localhost:8080/`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ViewFunctionParams{FunctionID: args[0]}
			if cmd.Flags().Changed("type-args") {
				params.TypeArgs = &typeArgs
			}
			if cmd.Flags().Changed("args") {
				params.Args = &viewArgs
			}

			result, err := app.ViewFunction.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewViewRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&typeArgs, "type-args", "", "Comma separated type arguments")
	cmd.Flags().StringVar(&viewArgs, "args", "", "Comma separated function arguments")
	cmd.Flags().String("url", "", "Node URL, overrides NODE_URL and upstream_nodes")

	return cmd
}
