// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the yotta CLI: the always-present scaffolding
// commands plus every command discovered from the project's installed
// apps.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"yotta-cli/internal/conf"
	"yotta-cli/internal/issue"
	"yotta-cli/internal/loader"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// quiet suppresses discovery info and warnings. Errors still print.
	quiet bool
	// verbose enables discovery debug output. Quiet wins when both set.
	verbose bool
	// strict aborts startup on any discovery anomaly.
	strict bool

	rootCmd = &cobra.Command{
		Use:   "yotta",
		Short: "A convention-driven CLI application framework",
		Long: TitleStyle.Render("yotta") + SubtitleStyle.Render(" - A convention-driven CLI application framework") + `

yotta aggregates commands from the apps installed in your project's
settings module and exposes them on a single CLI. Apps declare commands
either in Go or in 'commands.cue' manifests.

` + SubtitleStyle.Render("Quick Start:") + `
  1. yotta startproject myproj
  2. cd myproj && ./manage hello-core
  3. Add apps with 'yotta startapp' and list them in settings.cue

` + SubtitleStyle.Render("Examples:") + `
  yotta startproject shop       Scaffold a new project
  yotta startapp billing        Scaffold an app in the current project
  yotta startcommand invoice --app billing
                                Add a command stub to an app`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress discovery warnings (errors still print)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose discovery output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "abort on any command discovery anomaly")

	rootCmd.AddCommand(startprojectCmd)
	rootCmd.AddCommand(startappCmd)
	rootCmd.AddCommand(startcommandCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute assembles the CLI and dispatches. Called by main.main().
func Execute() {
	attachDiscoveredCommands(rootCmd, os.Args[1:])

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// attachDiscoveredCommands loads settings and adds every discovered
// command to the root. When settings cannot be resolved, discovery is
// skipped with an error message and the bootstrap scaffolding commands
// remain usable. Discovery runs before cobra parses anything, so the
// global flags are scanned from the raw arguments.
func attachDiscoveredCommands(root *cobra.Command, args []string) {
	scanGlobalFlags(args)

	settings, err := conf.Load()
	if err != nil {
		reportSettingsError(os.Stderr, err, args)
		return
	}

	// The project's debug setting raises diagnostic detail the same way
	// --verbose does.
	l := loader.New(loader.Options{
		Root:    settings.RootDir,
		Strict:  strict,
		Quiet:   quiet,
		Verbose: verbose || settings.Debug,
	})

	merged, err := l.Commands(settings.InstalledApps)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("command discovery failed:"))
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	for _, dc := range merged {
		root.AddCommand(buildCobraCommand(dc, settings))
	}
}

// scanGlobalFlags reads the discovery-affecting flags from the raw
// argument list with a throwaway flag set, so combined shorthands like
// -qv and "--" termination behave exactly as in the later cobra parse.
// Unknown flags are tolerated; a bare value following one can still be
// mistaken for the flag's argument, an ambiguity cobra cannot resolve
// at this point either.
func scanGlobalFlags(args []string) {
	fs := pflag.NewFlagSet("discovery", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&quiet, "quiet", "q", quiet, "")
	fs.BoolVarP(&verbose, "verbose", "v", verbose, "")
	fs.BoolVar(&strict, "strict", strict, "")
	// Swallow help requests so they do not abort the scan.
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
}

// reportSettingsError explains why discovered commands are unavailable.
// Scaffolding and help invocations work fine without settings, so they
// only see the message in verbose mode. A bare invocation shows the
// help screen, so it gets a one-line notice that app commands are
// missing from it; any other target gets the full explanation.
func reportSettingsError(w io.Writer, err error, args []string) {
	if quiet {
		return
	}
	target, ok := firstPositional(args)
	if ok && bootstrapTarget(target) && !verbose {
		return
	}

	log.New(w).Warn("app commands unavailable: settings could not be resolved")

	if !ok && !verbose {
		return
	}

	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		fmt.Fprintln(w, actionable.Format(verbose))
		return
	}
	fmt.Fprintln(w, err.Error())
}

// firstPositional returns the first non-flag argument before any "--"
// terminator. ok is false for a bare invocation.
func firstPositional(args []string) (target string, ok bool) {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if len(arg) > 0 && arg[0] == '-' {
			continue
		}
		return arg, true
	}
	return "", false
}

// bootstrapTarget reports whether the named command works without a
// resolvable project: scaffolding, help or version.
func bootstrapTarget(name string) bool {
	switch name {
	case "startproject", "startapp", "startcommand", "help", "completion":
		return true
	}
	return false
}
