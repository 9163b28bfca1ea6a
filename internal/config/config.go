// Package config loads settings from defaults, a TOML file, the environment
// and command-line flags, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/kingrocfella/todolist/internal/logging"
	"github.com/kingrocfella/todolist/internal/ui"
)

const (
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
	fileName        = "config.toml"
	appDir          = "todo"
)

// Config is the merged application configuration.
type Config struct {
	Theme     string `toml:"theme"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	Seed      bool   `toml:"seed"`
	AltScreen bool   `toml:"alt_screen"`

	// Group prints `ls` grouped by pending/done. Flag only.
	Group bool `toml:"-"`
	// Path is the config file that was read, if any.
	Path string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.Seed = true
	cfg.AltScreen = true
}

// NewFlagSet declares the root flags.
func NewFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SetInterspersed(false)
	fs.StringP("config", "c", "", "path to a TOML config file")
	fs.String("theme", DefaultTheme, "color theme: "+strings.Join(ui.Themes, ", "))
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("log-file", "", "write logs to this file (default: discard)")
	fs.Bool("no-seed", false, "start with an empty list instead of the sample todos")
	fs.Bool("no-alt-screen", false, "render inline instead of the alternate screen")
	fs.BoolP("group", "g", false, "group `ls` output by pending/done")
	return fs
}

// Load parses args with fs and merges every source into a Config. It returns
// the positional arguments left after the flags.
func Load(fs *pflag.FlagSet, args []string) (*Config, []string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &Config{}
	setDefaults(cfg)

	path, _ := fs.GetString("config")
	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.Path = path
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, nil, err
	}
	applyFlags(cfg, fs)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate rejects unknown themes and log levels.
func (c *Config) Validate() error {
	if _, err := ui.Lookup(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// findConfigFile returns $XDG_CONFIG_HOME/todo/config.toml (or the OS
// equivalent) if it exists, else ~/.todo.toml, else "".
func findConfigFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, appDir, fileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".todo.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_NO_SEED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODO_NO_SEED: %w", err)
		}
		cfg.Seed = !b
	}
	return nil
}

// applyFlags copies only the flags the user actually set.
func applyFlags(cfg *Config, fs *pflag.FlagSet) {
	if fs.Changed("theme") {
		cfg.Theme, _ = fs.GetString("theme")
	}
	if fs.Changed("log-level") {
		cfg.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("log-file") {
		cfg.LogFile, _ = fs.GetString("log-file")
	}
	if fs.Changed("no-seed") {
		noSeed, _ := fs.GetBool("no-seed")
		cfg.Seed = !noSeed
	}
	if fs.Changed("no-alt-screen") {
		noAlt, _ := fs.GetBool("no-alt-screen")
		cfg.AltScreen = !noAlt
	}
	cfg.Group, _ = fs.GetBool("group")
}
