package cli

import (
	"fmt"

	"github.com/libra-community/libra-cli/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewNodeURLCmd creates the node-url command
func NewNodeURLCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "node-url",
		Short: "Print the node URL commands will talk to",
		Long: `Print the node URL resolved from NODE_URL, or picked at random from
profile.upstream_nodes in the node settings file (--node-config).

With --check the node is probed with GET /v1 and its ledger state is shown.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !check {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), app.NodeConfig.NodeURL)
				return err
			}

			result, err := app.CheckNode.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := render.NewNodeRenderer(cmd.OutOrStdout()).RenderCheck(app.NodeConfig.NodeURL, result); err != nil {
				return err
			}
			if !result.Alive {
				return fmt.Errorf("node %s is not responding", app.NodeConfig.NodeURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check that the node responds")

	return cmd
}
