// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yotta-cli/internal/scaffold"
)

var (
	startappRoot  string
	startappForce bool

	startappCmd = &cobra.Command{
		Use:   "startapp <name>",
		Short: "Scaffold an app in the current project",
		Long: `Creates an app skeleton: an initializer, a command-definitions module
with one example command, and a UI-extension module. Add the app's name
to installed_apps in your settings module to expose its commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := scaffold.App(scaffold.AppOptions{
				Name:  args[0],
				Root:  startappRoot,
				Force: startappForce,
			})
			if err != nil {
				return err
			}

			printScaffoldResult(cmd, res)
			fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("App '"+args[0]+"' is ready."))
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render(
				fmt.Sprintf("Next: add %q to installed_apps in your settings module", args[0])))
			return nil
		},
	}
)

func init() {
	startappCmd.Flags().StringVarP(&startappRoot, "dir", "d", "", "project root to create the app under (default: current directory)")
	startappCmd.Flags().BoolVarP(&startappForce, "force", "f", false, "overwrite existing files")
}
