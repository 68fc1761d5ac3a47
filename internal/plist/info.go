package plist

import (
	"fmt"
	"os"
	"strings"
)

// InfoPlistConfig holds the values rendered into a wrapper bundle's
// Info.plist.
type InfoPlistConfig struct {
	AppName  string
	BundleID string
	ExecName string
	Version  string
}

// WriteInfoPlist creates a minimal Info.plist file at the specified path.
func WriteInfoPlist(path string, cfg InfoPlistConfig) error {
	if err := validateInfoPlistConfig(cfg); err != nil {
		return fmt.Errorf("invalid info plist config: %w", err)
	}

	content := InfoPlistContent(cfg)
	return os.WriteFile(path, []byte(content), 0644)
}

// validateInfoPlistConfig validates the configuration for Info.plist generation.
func validateInfoPlistConfig(cfg InfoPlistConfig) error {
	if cfg.AppName == "" {
		return fmt.Errorf("app name is required")
	}
	if cfg.BundleID == "" {
		return fmt.Errorf("bundle ID is required")
	}
	if cfg.ExecName == "" {
		return fmt.Errorf("executable name is required")
	}
	if cfg.Version == "" {
		return fmt.Errorf("version is required")
	}
	return nil
}

// InfoPlistContent generates the XML content for an Info.plist file. The key
// set is intentionally minimal: only what Launch Services needs to register
// the wrapper bundle and resolve its executable.
func InfoPlistContent(cfg InfoPlistConfig) string {
	entries := []string{
		xmlKeyValue("CFBundleExecutable", cfg.ExecName),
		xmlKeyValue("CFBundleIdentifier", cfg.BundleID),
		xmlKeyValue("CFBundleName", cfg.AppName),
		xmlKeyValue("CFBundleVersion", cfg.Version),
		xmlKeyValue("CFBundlePackageType", "APPL"),
	}

	return wrapPlist(wrapDict(strings.Join(entries, "\n")))
}
