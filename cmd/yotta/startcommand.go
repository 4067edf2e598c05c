// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yotta-cli/internal/scaffold"
)

var (
	startcommandApp   string
	startcommandRoot  string
	startcommandForce bool

	startcommandCmd = &cobra.Command{
		Use:   "startcommand <name>",
		Short: "Add a command stub to an app",
		Long: `Appends a stub command to an app's commands module. The app must
already exist (see 'yotta startapp'). An existing command with the same
name is left alone unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := scaffold.Command(scaffold.CommandOptions{
				Name:  args[0],
				App:   startcommandApp,
				Root:  startcommandRoot,
				Force: startcommandForce,
			})
			if err != nil {
				return err
			}

			printScaffoldResult(cmd, res)
			if len(res.Created) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("Command '"+args[0]+"' added to app '"+startcommandApp+"'."))
			}
			return nil
		},
	}
)

func init() {
	startcommandCmd.Flags().StringVarP(&startcommandApp, "app", "a", scaffold.StarterAppName, "app to add the command to")
	startcommandCmd.Flags().StringVarP(&startcommandRoot, "dir", "d", "", "project root (default: current directory)")
	startcommandCmd.Flags().BoolVarP(&startcommandForce, "force", "f", false, "replace an existing command with the same name")
}
