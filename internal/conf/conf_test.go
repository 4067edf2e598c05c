// SPDX-License-Identifier: MPL-2.0

package conf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEnvFile(t *testing.T) {
	content := []byte(`
# comment
FOO=bar
export EXPORTED=yes
QUOTED="hello world"
SINGLE='lit $eral'
INLINE=value # trailing comment
EMPTY=
malformed line without equals
=nokey
`)

	env := ParseEnvFile(content)

	want := map[string]string{
		"FOO":      "bar",
		"EXPORTED": "yes",
		"QUOTED":   "hello world",
		"SINGLE":   "lit $eral",
		"INLINE":   "value",
		"EMPTY":    "",
	}
	if len(env) != len(want) {
		t.Errorf("parsed %d entries, want %d: %v", len(env), len(want), env)
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("env[%q] = %q, want %q", k, env[k], v)
		}
	}
}

func TestApplyEnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, ".env"), "FROM_ENV=base\nSHARED=base\nPRESET=base\n")
	writeTestFile(t, filepath.Join(dir, ".env.local"), "SHARED=local\nPRESET=local\n")

	t.Setenv("PRESET", "process")
	t.Setenv("FROM_ENV", "")
	os.Unsetenv("FROM_ENV")
	t.Setenv("SHARED", "")
	os.Unsetenv("SHARED")

	if err := ApplyEnvFiles(dir); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("FROM_ENV"); got != "base" {
		t.Errorf(".env should fill unset FROM_ENV, got %q", got)
	}
	if got := os.Getenv("SHARED"); got != "local" {
		t.Errorf(".env.local should override SHARED, got %q", got)
	}
	if got := os.Getenv("PRESET"); got != "local" {
		t.Errorf(".env.local overrides even preset process values, got %q", got)
	}
}

func TestApplyEnvFilesMissing(t *testing.T) {
	if err := ApplyEnvFiles(t.TempDir()); err != nil {
		t.Fatalf("missing env files must not error: %v", err)
	}
}

func TestResolveSettingsModuleExplicit(t *testing.T) {
	got, err := ResolveSettingsModule(Environ{SettingsModule: "settings_ci", Env: "dev"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "settings_ci" {
		t.Errorf("explicit module must win over shorthand, got %q", got)
	}
}

func TestResolveSettingsModuleFromShorthand(t *testing.T) {
	t.Setenv(SettingsModuleVar, "")
	os.Unsetenv(SettingsModuleVar)

	got, err := ResolveSettingsModule(Environ{Env: "testenv"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "settings_testenv" {
		t.Errorf("derived module = %q, want settings_testenv", got)
	}
	if os.Getenv(SettingsModuleVar) != "settings_testenv" {
		t.Errorf("resolution must write back to %s, got %q", SettingsModuleVar, os.Getenv(SettingsModuleVar))
	}
}

func TestResolveSettingsModuleUnconfigured(t *testing.T) {
	_, err := ResolveSettingsModule(Environ{})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !strings.Contains(err.Error(), SettingsModuleVar) {
		t.Errorf("error must name %s: %v", SettingsModuleVar, err)
	}
}

func TestLoadTypedSettings(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "settings.cue"), `
installed_apps: ["billing", "ops.reporting"]
theme: "dark"
api_token: "sekrit"
`)

	t.Setenv(SettingsModuleVar, "settings")
	t.Setenv(EnvVar, "")
	os.Unsetenv(EnvVar)
	SetRootDirOverride(dir)
	t.Cleanup(Reset)

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(s.InstalledApps) != 2 || s.InstalledApps[0] != "billing" {
		t.Errorf("unexpected installed apps: %v", s.InstalledApps)
	}
	if s.Theme != "dark" {
		t.Errorf("theme = %q, want dark", s.Theme)
	}
	if s.Module != "settings" {
		t.Errorf("module = %q", s.Module)
	}

	token, err := s.GetString("api_token")
	if err != nil {
		t.Fatal(err)
	}
	if token != "sekrit" {
		t.Errorf("api_token = %q", token)
	}

	_, err = s.Get("nonexistent")
	var unknown *UnknownSettingError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownSettingError, got %v", err)
	}
	if unknown.Key != "nonexistent" || unknown.Module != "settings" {
		t.Errorf("unexpected error fields: %+v", unknown)
	}

	// Second call serves the cache.
	again, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if again != s {
		t.Error("Load must return the cached settings")
	}
}

func TestLoadMissingModule(t *testing.T) {
	t.Setenv(SettingsModuleVar, "settings_gone")
	t.Setenv(EnvVar, "")
	os.Unsetenv(EnvVar)
	SetRootDirOverride(t.TempDir())
	t.Cleanup(Reset)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing settings module")
	}
	if !strings.Contains(err.Error(), "settings_gone") {
		t.Errorf("error must name the module: %v", err)
	}
}

func TestLoadInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "settings.cue"), `installed_apps: "not-a-list"`)

	t.Setenv(SettingsModuleVar, "settings")
	t.Setenv(EnvVar, "")
	os.Unsetenv(EnvVar)
	SetRootDirOverride(dir)
	t.Cleanup(Reset)

	_, err := Load()
	if err == nil {
		t.Fatal("expected schema violation for string installed_apps")
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
