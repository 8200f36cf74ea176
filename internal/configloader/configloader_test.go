package configloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigPath_Env(t *testing.T) {
	t.Setenv(EnvConfig, "/nowhere/custom.toml")

	got, err := ResolveConfigPath("config.toml")
	if err != nil {
		t.Fatalf("ResolveConfigPath() unexpected error: %v", err)
	}
	if got != "/nowhere/custom.toml" {
		t.Errorf("ResolveConfigPath() = %q, want the env value verbatim", got)
	}
}

func TestResolveConfigPath_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := filepath.Join(xdg, AppName, "config.toml")
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveConfigPath("config.toml")
	if err != nil {
		t.Fatalf("ResolveConfigPath() unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("ResolveConfigPath() = %q, want %q", got, want)
	}
}

func TestResolveConfigPath_NotFound(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// A file name no system directory will carry.
	_, err := ResolveConfigPath("winechad-test-absent.toml")
	if err == nil {
		t.Fatal("ResolveConfigPath() succeeded without any config file")
	}
	if !strings.Contains(err.Error(), EnvConfig) {
		t.Errorf("error %q does not mention %s", err, EnvConfig)
	}
}

func TestUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	got, err := UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir() unexpected error: %v", err)
	}
	if got != "/xdg/winechad" {
		t.Errorf("UserConfigDir() = %q", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	got, err = UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir() unexpected error: %v", err)
	}
	if got != "/home/tester/.config/winechad" {
		t.Errorf("UserConfigDir() = %q", got)
	}
}
