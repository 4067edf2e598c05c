// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yotta-cli/internal/conf"
	"yotta-cli/internal/loader"
	"yotta-cli/internal/params"
	"yotta-cli/internal/runtime"
	"yotta-cli/pkg/appfile"
)

// buildCobraCommand turns a discovered command into a cobra command. Raw
// string tokens are converted through the parameter type registry before
// the command body runs; a rejected value surfaces as a validation error
// and the body never runs.
func buildCobraCommand(dc *loader.DiscoveredCommand, settings *conf.Settings) *cobra.Command {
	use := dc.Name
	for _, arg := range dc.Args {
		use += fmt.Sprintf(" <%s>", arg.Name)
	}

	cc := &cobra.Command{
		Use:   use,
		Short: dc.Help,
		Long:  dc.Help + SubtitleStyle.Render("\n\nProvided by app: "+dc.App),
		Args:  positionalPolicy(dc),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscovered(cmd, dc, settings, args)
		},
	}

	for _, flag := range dc.Flags {
		registerFlag(cc, flag)
	}

	return cc
}

// positionalPolicy requires exactly the declared arguments. Script
// commands with no declared arguments take anything and expose it as
// $1, $2, ...
func positionalPolicy(dc *loader.DiscoveredCommand) cobra.PositionalArgs {
	if dc.IsScript() && len(dc.Args) == 0 {
		return cobra.ArbitraryArgs
	}
	return cobra.ExactArgs(len(dc.Args))
}

func registerFlag(cc *cobra.Command, flag appfile.Flag) {
	if params.IsBool(flag.Type) {
		def := flag.Default == "true"
		cc.Flags().BoolP(flag.Name, flag.Short, def, flag.Help)
	} else {
		cc.Flags().StringP(flag.Name, flag.Short, flag.Default, flag.Help)
	}
	if flag.Required {
		_ = cc.MarkFlagRequired(flag.Name)
	}
}

func runDiscovered(cmd *cobra.Command, dc *loader.DiscoveredCommand, settings *conf.Settings, args []string) error {
	if !dc.IsScript() && dc.Run == nil {
		return fmt.Errorf("command '%s' (app '%s') defines neither a script nor a run function", dc.Name, dc.App)
	}

	inv := appfile.NewInvocation()
	inv.Raw = args

	for i, spec := range dc.Args {
		if i >= len(args) {
			break
		}
		value, err := params.Resolve(spec.Type).Convert(args[i])
		if err != nil {
			return fmt.Errorf("invalid value for argument '%s': %w", spec.Name, err)
		}
		inv.SetArg(spec.Name, value)
	}

	for _, spec := range dc.Flags {
		if params.IsBool(spec.Type) {
			value, err := cmd.Flags().GetBool(spec.Name)
			if err != nil {
				return err
			}
			inv.SetFlag(spec.Name, value)
			continue
		}

		raw, err := cmd.Flags().GetString(spec.Name)
		if err != nil {
			return err
		}
		if raw == "" && !cmd.Flags().Changed(spec.Name) {
			continue
		}
		value, err := params.Resolve(spec.Type).Convert(raw)
		if err != nil {
			return fmt.Errorf("invalid value for flag '--%s': %w", spec.Name, err)
		}
		inv.SetFlag(spec.Name, value)
	}

	if dc.IsScript() {
		return runScript(cmd, dc, settings, inv, args)
	}

	ctx := appfile.NewContext(settings)
	return dc.Run(ctx, inv)
}

// runScript executes a manifest command's shell body. Positional
// arguments become $1..$n; flag values are exported as environment
// variables named after the flag (upper-cased, dashes to underscores).
func runScript(cmd *cobra.Command, dc *loader.DiscoveredCommand, settings *conf.Settings, inv *appfile.Invocation, args []string) error {
	env := os.Environ()
	for _, spec := range dc.Flags {
		if value := inv.Flag(spec.Name); value != nil {
			env = append(env, flagEnvName(spec.Name)+"="+fmt.Sprintf("%v", value))
		}
	}

	res := runtime.Run(cmd.Context(), dc.Script, runtime.ScriptContext{
		Dir:    settings.RootDir,
		Env:    env,
		Args:   args,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

func flagEnvName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
