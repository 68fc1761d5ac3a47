// Package config defines the table of applications to patch and the
// directories the patcher writes into.
package config

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Strategy selects how an application is patched.
type Strategy string

const (
	// StrategyInBundle replaces the bundle executable with a wrapper script
	// that re-execs the preserved original with extra flags.
	StrategyInBundle Strategy = "patch"

	// StrategyScript generates an external launcher script plus a synthetic
	// wrapper app, leaving the original bundle untouched and unsigned.
	StrategyScript Strategy = "script"
)

// App describes one application bundle to patch. Entries are immutable once
// loaded; the patcher processes them in declaration order.
type App struct {
	// BundlePath is the absolute path of the installed .app bundle.
	BundlePath string `yaml:"bundle"`

	// Name is the display name, used in log lines, script names and the
	// wrapper bundle identifier.
	Name string `yaml:"name"`

	// Flags are prepended to any arguments the user launches the app with.
	Flags []string `yaml:"flags"`

	// Executable is the bundle-relative path of the main executable.
	Executable string `yaml:"executable"`

	// Strategy defaults to StrategyInBundle when empty.
	Strategy Strategy `yaml:"strategy"`
}

// Config is the full configuration for a patch run.
type Config struct {
	Apps []App `yaml:"apps"`

	// InstallDir receives generated launcher scripts. Writing here normally
	// requires elevated privileges.
	InstallDir string `yaml:"install_dir"`

	// WrapperDir receives synthesized wrapper .app bundles.
	WrapperDir string `yaml:"wrapper_dir"`

	// LogDir is where wrapper scripts append their launch log lines.
	LogDir string `yaml:"log_dir"`
}

// glFlags is the flag set forced onto every app in the default table.
var glFlags = []string{"--use-gl=desktop"}

// Default returns the built-in patch table: the Chromium- and
// Electron-based apps that respond to --use-gl, with Spotify on the
// external-script strategy because its bundle rejects in-bundle re-signing.
func Default() (*Config, error) {
	wrapperDir, err := homedir.Expand("~/Applications")
	if err != nil {
		return nil, fmt.Errorf("resolve wrapper directory: %w", err)
	}
	logDir, err := homedir.Expand("~/Library/Logs")
	if err != nil {
		return nil, fmt.Errorf("resolve log directory: %w", err)
	}

	return &Config{
		InstallDir: "/usr/local/bin",
		WrapperDir: wrapperDir,
		LogDir:     logDir,
		Apps: []App{
			{
				BundlePath: "/Applications/Google Chrome.app",
				Name:       "Google Chrome",
				Flags:      glFlags,
				Executable: "Contents/MacOS/Google Chrome",
				Strategy:   StrategyInBundle,
			},
			{
				BundlePath: "/Applications/Discord.app",
				Name:       "Discord",
				Flags:      glFlags,
				Executable: "Contents/MacOS/Discord",
				Strategy:   StrategyInBundle,
			},
			{
				BundlePath: "/Applications/Spotify.app",
				Name:       "Spotify",
				Flags:      glFlags,
				Executable: "Contents/MacOS/Spotify",
				Strategy:   StrategyScript,
			},
			{
				BundlePath: "/Applications/Visual Studio Code.app",
				Name:       "Visual Studio Code",
				Flags:      glFlags,
				Executable: "Contents/MacOS/Visual Studio Code",
				Strategy:   StrategyInBundle,
			},
			{
				BundlePath: "/Applications/Slack.app",
				Name:       "Slack",
				Flags:      glFlags,
				Executable: "Contents/MacOS/Slack",
				Strategy:   StrategyInBundle,
			},
			{
				BundlePath: "/Applications/Microsoft Teams.app",
				Name:       "Microsoft Teams",
				Flags:      glFlags,
				Executable: "Contents/MacOS/Microsoft Teams",
				Strategy:   StrategyInBundle,
			},
			{
				BundlePath: "/Applications/OBS.app",
				Name:       "OBS Studio",
				Flags:      glFlags,
				Executable: "Contents/MacOS/OBS",
				Strategy:   StrategyInBundle,
			},
		},
	}, nil
}

// Load reads a YAML configuration file and overlays it on the defaults. Any
// field left empty in the file keeps its default; a non-empty apps list
// replaces the built-in table entirely.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if len(file.Apps) > 0 {
		cfg.Apps = file.Apps
	}
	if file.InstallDir != "" {
		cfg.InstallDir = file.InstallDir
	}
	if file.WrapperDir != "" {
		if cfg.WrapperDir, err = homedir.Expand(file.WrapperDir); err != nil {
			return nil, fmt.Errorf("resolve wrapper directory: %w", err)
		}
	}
	if file.LogDir != "" {
		if cfg.LogDir, err = homedir.Expand(file.LogDir); err != nil {
			return nil, fmt.Errorf("resolve log directory: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for entries the patcher cannot act on.
func (c *Config) Validate() error {
	if c.InstallDir == "" {
		return fmt.Errorf("install directory is required")
	}
	if c.WrapperDir == "" {
		return fmt.Errorf("wrapper directory is required")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory is required")
	}

	seen := make(map[string]bool, len(c.Apps))
	for i, app := range c.Apps {
		if app.BundlePath == "" {
			return fmt.Errorf("app %d: bundle path is required", i)
		}
		if app.Name == "" {
			return fmt.Errorf("app %s: name is required", app.BundlePath)
		}
		if app.Executable == "" {
			return fmt.Errorf("app %s: executable path is required", app.Name)
		}
		switch app.Strategy {
		case "", StrategyInBundle, StrategyScript:
		default:
			return fmt.Errorf("app %s: unknown strategy %q", app.Name, app.Strategy)
		}
		if seen[app.BundlePath] {
			return fmt.Errorf("duplicate bundle path %s", app.BundlePath)
		}
		seen[app.BundlePath] = true
	}
	return nil
}

// EffectiveStrategy returns the app's strategy, defaulting to in-bundle.
func (a App) EffectiveStrategy() Strategy {
	if a.Strategy == "" {
		return StrategyInBundle
	}
	return a.Strategy
}
