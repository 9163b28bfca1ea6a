package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kingrocfella/todolist/internal/ui"
)

// isolate points config discovery and env at an empty temp home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, k := range []string{"TODO_THEME", "TODO_LOG_LEVEL", "TODO_LOG_FILE", "TODO_NO_SEED"} {
		t.Setenv(k, "")
	}
	return home
}

func load(t *testing.T, args ...string) (*Config, []string, error) {
	t.Helper()
	return Load(NewFlagSet("todo", io.Discard), args)
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)
	cfg, rest, err := load(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if !cfg.Seed || !cfg.AltScreen {
		t.Errorf("Seed/AltScreen: got %v/%v, want true/true", cfg.Seed, cfg.AltScreen)
	}
	if cfg.Path != "" {
		t.Errorf("Path: got %q, want empty", cfg.Path)
	}
	if len(rest) != 0 {
		t.Errorf("rest: got %v", rest)
	}
}

func TestPrecedence(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "todo", "config.toml"), `
theme = "neon"
log_level = "debug"
log_file = "/tmp/from-file.log"
seed = false
`)

	cfg, _, err := load(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "neon" || cfg.LogLevel != "debug" || cfg.Seed {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Path == "" {
		t.Error("Path not recorded")
	}

	t.Setenv("TODO_THEME", "mono")
	t.Setenv("TODO_NO_SEED", "false")
	cfg, _, err = load(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "mono" || !cfg.Seed {
		t.Errorf("env values not applied: %+v", cfg)
	}

	cfg, rest, err := load(t, "--theme", "classic", "--log-file", "x.log", "ls", "--ignored")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "classic" || cfg.LogFile != "x.log" {
		t.Errorf("flag values not applied: %+v", cfg)
	}
	if len(rest) != 2 || rest[0] != "ls" {
		t.Errorf("rest: got %v, want [ls --ignored]", rest)
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	isolate(t)
	_, _, err := load(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.toml")
	writeFile(t, path, "colour = \"red\"\n")
	if _, _, err := load(t, "-c", path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"ok", func(*Config) {}, nil},
		{"bad theme", func(c *Config) { c.Theme = "vaporwave" }, ui.ErrUnknownTheme},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := cfg.Validate()
			switch {
			case tt.name == "ok" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tt.name != "ok" && err == nil:
				t.Error("expected error")
			case tt.wantErr != nil && !errors.Is(err, tt.wantErr):
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBadNoSeedEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_NO_SEED", "perhaps")
	if _, _, err := load(t); err == nil {
		t.Error("expected error for TODO_NO_SEED=perhaps")
	}
}
