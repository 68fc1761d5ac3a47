// Command openglpatch patches installed macOS applications to launch with
// forced OpenGL rendering flags. Run with no arguments (typically under
// sudo) to process the built-in app table; pass --config to supply your own.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/m0nnnna/macopengl-patcher/internal/config"
	"github.com/m0nnnna/macopengl-patcher/internal/logging"
	"github.com/m0nnnna/macopengl-patcher/internal/patcher"
	"github.com/m0nnnna/macopengl-patcher/internal/system"
	"github.com/m0nnnna/macopengl-patcher/internal/version"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "openglpatch",
	Short: "Patch installed macOS apps to launch with forced OpenGL flags",
	Long: `openglpatch rewrites installed application bundles so their rendering
backend starts with forced OpenGL flags. Chromium- and Electron-based apps
get an in-bundle wrapper script (the bundle is ad-hoc re-signed and
de-quarantined); apps that reject re-signing get an external launcher script
and a wrapper .app under ~/Applications instead. The run finishes by
resetting the Launch Services database and restarting the Dock.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML file overriding the built-in app table")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

func run(cmd *cobra.Command, args []string) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logging.Init(level, logFormat)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Patching applications for OpenGL rendering...")

	p := patcher.New(cfg, system.NewRunner(), clockwork.NewRealClock(), log)
	results, err := p.Run()
	if err != nil {
		if errors.Is(err, patcher.ErrPermissionDenied) {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
			os.Exit(1)
		}
		return err
	}

	p.Summarize(results)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.Default()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}
