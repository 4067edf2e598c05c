// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yotta-cli/internal/conf"
	"yotta-cli/internal/loader"
	"yotta-cli/pkg/appfile"
)

func resetGlobalFlags() {
	quiet = false
	verbose = false
	strict = false
}

func TestScanGlobalFlags(t *testing.T) {
	tests := []struct {
		args                   []string
		quiet, verbose, strict bool
	}{
		{[]string{"deploy"}, false, false, false},
		{[]string{"-q", "deploy"}, true, false, false},
		{[]string{"--verbose", "--strict", "deploy"}, false, true, true},
		{[]string{"-qv", "deploy"}, true, true, false},
		{[]string{"--name", "qa", "--strict"}, false, false, true},
		{[]string{"deploy", "--", "--strict"}, false, false, false},
		{[]string{"--help", "--verbose"}, false, true, false},
	}

	for _, tt := range tests {
		resetGlobalFlags()
		scanGlobalFlags(tt.args)
		if quiet != tt.quiet || verbose != tt.verbose || strict != tt.strict {
			t.Errorf("scanGlobalFlags(%v) = q=%v v=%v s=%v, want q=%v v=%v s=%v",
				tt.args, quiet, verbose, strict, tt.quiet, tt.verbose, tt.strict)
		}
	}
	resetGlobalFlags()
}

func TestFirstPositional(t *testing.T) {
	tests := []struct {
		args   []string
		target string
		ok     bool
	}{
		{nil, "", false},
		{[]string{"--help"}, "", false},
		{[]string{"startproject", "acme"}, "startproject", true},
		{[]string{"-q", "hello-core"}, "hello-core", true},
		{[]string{"--", "startproject"}, "", false},
	}

	for _, tt := range tests {
		target, ok := firstPositional(tt.args)
		if target != tt.target || ok != tt.ok {
			t.Errorf("firstPositional(%v) = %q, %v, want %q, %v",
				tt.args, target, ok, tt.target, tt.ok)
		}
	}
}

func TestReportSettingsError(t *testing.T) {
	cause := errors.New("settings module 'settings' not found")

	tests := []struct {
		name           string
		args           []string
		quiet, verbose bool
		wantNotice     bool
		wantCause      bool
	}{
		{name: "bare shows short notice", args: nil, wantNotice: true},
		{name: "bare verbose shows cause", args: nil, verbose: true, wantNotice: true, wantCause: true},
		{name: "scaffolding stays silent", args: []string{"startproject", "acme"}},
		{name: "scaffolding verbose shows cause", args: []string{"startapp", "billing"}, verbose: true, wantNotice: true, wantCause: true},
		{name: "unknown target shows cause", args: []string{"deploy"}, wantNotice: true, wantCause: true},
		{name: "quiet silences everything", args: []string{"deploy"}, quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobalFlags()
			defer resetGlobalFlags()
			quiet, verbose = tt.quiet, tt.verbose

			var buf bytes.Buffer
			reportSettingsError(&buf, cause, tt.args)

			out := buf.String()
			if got := strings.Contains(out, "app commands unavailable"); got != tt.wantNotice {
				t.Errorf("notice printed = %v, want %v; output:\n%s", got, tt.wantNotice, out)
			}
			if got := strings.Contains(out, "settings module"); got != tt.wantCause {
				t.Errorf("cause printed = %v, want %v; output:\n%s", got, tt.wantCause, out)
			}
		})
	}
}

func TestBuildCobraCommandScript(t *testing.T) {
	settings := &conf.Settings{RootDir: t.TempDir()}
	dc := &loader.DiscoveredCommand{
		Command: appfile.New("shout").
			Flag(appfile.Flag{Name: "dry-run", Type: "bool"}).
			Script(`echo "running $1 dry=$DRY_RUN"`),
		App: "ops",
	}

	cc := buildCobraCommand(dc, settings)

	var out bytes.Buffer
	cc.SetOut(&out)
	cc.SetErr(&out)
	cc.SetArgs([]string{"release", "--dry-run"})
	if err := cc.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "running release") {
		t.Errorf("positional arg not passed to script: %q", got)
	}
	if !strings.Contains(got, "dry=true") {
		t.Errorf("flag not exported to script environment: %q", got)
	}
}

func TestBuildCobraCommandScriptExitCode(t *testing.T) {
	settings := &conf.Settings{RootDir: t.TempDir()}
	dc := &loader.DiscoveredCommand{
		Command: appfile.New("fail").Script("exit 4"),
		App:     "ops",
	}

	cc := buildCobraCommand(dc, settings)
	cc.SetOut(&bytes.Buffer{})
	cc.SetErr(&bytes.Buffer{})
	cc.SetArgs(nil)

	err := cc.Execute()
	exitErr, ok := err.(*ExitError)
	if !ok {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != 4 {
		t.Errorf("exit code %d, want 4", exitErr.Code)
	}
}

func TestBuildCobraCommandNoBody(t *testing.T) {
	settings := &conf.Settings{RootDir: t.TempDir()}
	dc := &loader.DiscoveredCommand{
		Command: &appfile.Command{Name: "bare"},
		App:     "ops",
	}

	cc := buildCobraCommand(dc, settings)
	cc.SetOut(&bytes.Buffer{})
	cc.SetErr(&bytes.Buffer{})
	cc.SilenceUsage = true
	cc.SilenceErrors = true
	cc.SetArgs(nil)

	err := cc.Execute()
	if err == nil {
		t.Fatal("a command with neither script nor run function must error, not panic")
	}
	if !strings.Contains(err.Error(), "bare") || !strings.Contains(err.Error(), "ops") {
		t.Errorf("error should name the command and its app: %v", err)
	}
}

func TestBuildCobraCommandValidation(t *testing.T) {
	settings := &conf.Settings{RootDir: t.TempDir()}
	ran := false
	dc := &loader.DiscoveredCommand{
		Command: appfile.New("notify").
			Arg("recipient", "email").
			Run(func(ctx *appfile.Context, inv *appfile.Invocation) error {
				ran = true
				return nil
			}),
		App: "ops",
	}

	cc := buildCobraCommand(dc, settings)
	cc.SetOut(&bytes.Buffer{})
	cc.SetErr(&bytes.Buffer{})
	cc.SilenceUsage = true
	cc.SilenceErrors = true

	cc.SetArgs([]string{"not-an-email"})
	err := cc.Execute()
	if err == nil {
		t.Fatal("invalid email should fail validation")
	}
	if !strings.Contains(err.Error(), "recipient") {
		t.Errorf("validation error should name the argument: %v", err)
	}
	if ran {
		t.Error("command body must not run after a validation failure")
	}

	cc.SetArgs([]string{"dev@example.com"})
	if err := cc.Execute(); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("command body should run for a valid value")
	}
}

func TestBuildCobraCommandGoInvocation(t *testing.T) {
	settings := &conf.Settings{RootDir: t.TempDir(), Theme: "dark"}
	var gotPort any
	dc := &loader.DiscoveredCommand{
		Command: appfile.New("serve").
			Arg("port", "port").
			Run(func(ctx *appfile.Context, inv *appfile.Invocation) error {
				gotPort = inv.Arg("port")
				return nil
			}),
		App: "ops",
	}

	cc := buildCobraCommand(dc, settings)
	cc.SetOut(&bytes.Buffer{})
	cc.SetErr(&bytes.Buffer{})
	cc.SetArgs([]string{"8080"})
	if err := cc.Execute(); err != nil {
		t.Fatal(err)
	}
	if port, ok := gotPort.(int); !ok || port != 8080 {
		t.Errorf("port converted to %v (%T), want int 8080", gotPort, gotPort)
	}
}

func TestStartprojectCommand(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"startproject", "acme", "--dir", dir})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		startprojectDir = ""
		startprojectForce = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "acme", "settings.cue")); err != nil {
		t.Errorf("project not scaffolded: %v", err)
	}
	if !strings.Contains(out.String(), "acme") {
		t.Errorf("output should mention the project: %q", out.String())
	}
}
