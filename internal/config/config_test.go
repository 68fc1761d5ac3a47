package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/usr/local/bin", cfg.InstallDir)
	assert.Contains(t, cfg.WrapperDir, "Applications")
	assert.Contains(t, cfg.LogDir, "Logs")

	byName := make(map[string]App)
	for _, app := range cfg.Apps {
		byName[app.Name] = app
	}

	chrome, ok := byName["Google Chrome"]
	require.True(t, ok)
	assert.Equal(t, "/Applications/Google Chrome.app", chrome.BundlePath)
	assert.Equal(t, "Contents/MacOS/Google Chrome", chrome.Executable)
	assert.Equal(t, []string{"--use-gl=desktop"}, chrome.Flags)
	assert.Equal(t, StrategyInBundle, chrome.EffectiveStrategy())

	spotify, ok := byName["Spotify"]
	require.True(t, ok)
	assert.Equal(t, StrategyScript, spotify.EffectiveStrategy())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
install_dir: /opt/patcher/bin
apps:
  - bundle: /Applications/Alpha.app
    name: Alpha
    flags: ["--use-gl=desktop", "--ignore-gpu-blocklist"]
    executable: Contents/MacOS/Alpha
  - bundle: /Applications/Beta.app
    name: Beta
    flags: ["--use-gl=desktop"]
    executable: Contents/MacOS/Beta
    strategy: script
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/patcher/bin", cfg.InstallDir)
	assert.NotEmpty(t, cfg.WrapperDir, "unset fields keep defaults")
	require.Len(t, cfg.Apps, 2)

	assert.Equal(t, "Alpha", cfg.Apps[0].Name)
	assert.Equal(t, []string{"--use-gl=desktop", "--ignore-gpu-blocklist"}, cfg.Apps[0].Flags)
	assert.Equal(t, StrategyInBundle, cfg.Apps[0].EffectiveStrategy(), "strategy defaults to in-bundle")
	assert.Equal(t, StrategyScript, cfg.Apps[1].EffectiveStrategy())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			InstallDir: "/usr/local/bin",
			WrapperDir: "/tmp/wrappers",
			LogDir:     "/tmp/logs",
			Apps: []App{{
				BundlePath: "/Applications/Alpha.app",
				Name:       "Alpha",
				Executable: "Contents/MacOS/Alpha",
			}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing bundle path", func(t *testing.T) {
		cfg := base()
		cfg.Apps[0].BundlePath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		cfg := base()
		cfg.Apps[0].Name = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing executable", func(t *testing.T) {
		cfg := base()
		cfg.Apps[0].Executable = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := base()
		cfg.Apps[0].Strategy = "inplace"
		assert.Error(t, cfg.Validate())
	})

	t.Run("duplicate bundle path", func(t *testing.T) {
		cfg := base()
		cfg.Apps = append(cfg.Apps, cfg.Apps[0])
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing install dir", func(t *testing.T) {
		cfg := base()
		cfg.InstallDir = ""
		assert.Error(t, cfg.Validate())
	})
}
