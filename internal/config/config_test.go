package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Setenv(EnvDebug, "")

	cfg, err := Load(t.TempDir(), Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != DefaultFile {
		t.Errorf("expected File %q, got %q", DefaultFile, cfg.File)
	}
	if cfg.Debug || cfg.Quiet {
		t.Errorf("expected Debug and Quiet false, got %+v", cfg)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Setenv(EnvDebug, "")

	dir := t.TempDir()
	writeConfig(t, dir, "file = \"/tmp/my-todos\"\nquiet = true\n")

	cfg, err := Load(dir, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != "/tmp/my-todos" {
		t.Errorf("expected file from config, got %q", cfg.File)
	}
	if !cfg.Quiet {
		t.Error("expected quiet from config")
	}
	if cfg.Dir != dir {
		t.Errorf("expected Dir %q, got %q", dir, cfg.Dir)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "file = \"from-file\"\ndebug = false\n")

	t.Setenv(EnvFile, "from-env")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load(dir, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != "from-env" {
		t.Errorf("expected env to override file, got %q", cfg.File)
	}
	if !cfg.Debug {
		t.Error("expected env to enable debug")
	}

	cfg, err = Load(dir, Overrides{File: "from-flag", Debug: boolPtr(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != "from-flag" {
		t.Errorf("expected flag to override env, got %q", cfg.File)
	}
	if cfg.Debug {
		t.Error("expected flag to disable debug")
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "file = \n")

	_, err := Load(dir, Overrides{})
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !strings.Contains(err.Error(), "loading config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvFile, "")

	cfg, err := Load(t.TempDir(), Overrides{File: "~/todo.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, "todo.txt"); cfg.File != want {
		t.Errorf("expected %q, got %q", want, cfg.File)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/xdg", AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestLoad_BadDebugEnv(t *testing.T) {
	t.Setenv(EnvFile, "")
	t.Setenv(EnvDebug, "yes")

	cfg, err := Load(t.TempDir(), Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Debug {
		t.Error("expected unparsable value to leave debug off")
	}
	if len(cfg.Warnings) != 1 || cfg.Warnings[0] != `ignoring TODO_DEBUG="yes": want true or false` {
		t.Errorf("unexpected warnings %q", cfg.Warnings)
	}
}
