// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yotta-cli/internal/scaffold"
)

var (
	startprojectDir      string
	startprojectSettings string
	startprojectForce    bool

	startprojectCmd = &cobra.Command{
		Use:   "startproject <name>",
		Short: "Scaffold a new project",
		Long: `Creates a project skeleton: an executable 'manage' entry point, a
settings module, a packaging manifest, an environment-file template and
a starter app with one example command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := scaffold.Project(scaffold.ProjectOptions{
				Name:           args[0],
				Dir:            startprojectDir,
				SettingsModule: startprojectSettings,
				Force:          startprojectForce,
			})
			if err != nil {
				return err
			}

			printScaffoldResult(cmd, res)
			fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("Project '"+args[0]+"' is ready."))
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Next: cd "+args[0]+" && ./manage hello-"+scaffold.StarterAppName))
			return nil
		},
	}
)

func init() {
	startprojectCmd.Flags().StringVarP(&startprojectDir, "dir", "d", "", "parent directory for the new project (default: current directory)")
	startprojectCmd.Flags().StringVar(&startprojectSettings, "settings", "", "settings module name (default: settings)")
	startprojectCmd.Flags().BoolVarP(&startprojectForce, "force", "f", false, "overwrite existing files")
}

// printScaffoldResult reports every file a generator touched or left
// alone.
func printScaffoldResult(cmd *cobra.Command, res *scaffold.Result) {
	out := cmd.OutOrStdout()
	for _, path := range res.Created {
		fmt.Fprintln(out, SuccessStyle.Render("  created ")+path)
	}
	for _, path := range res.Skipped {
		fmt.Fprintln(out, WarningStyle.Render("  skipped ")+path+SubtitleStyle.Render(" (exists, use --force to overwrite)"))
	}
}
