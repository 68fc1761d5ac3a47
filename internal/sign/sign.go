// Package sign re-signs modified app bundles and clears the Gatekeeper
// quarantine attribute so macOS will launch them again.
package sign

import (
	"fmt"
	"log/slog"

	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

const quarantineAttr = "com.apple.quarantine"

// Signer invokes codesign and xattr through a Runner.
type Signer struct {
	runner system.Runner
	log    *slog.Logger
}

// New returns a Signer using the given command runner.
func New(runner system.Runner, log *slog.Logger) *Signer {
	if log == nil {
		log = slog.Default()
	}
	return &Signer{runner: runner, log: log}
}

// Resign performs a deep, forced, ad-hoc re-sign of the bundle. A failure
// here means the bundle cannot be run in its modified form; callers are
// expected to roll their modification back.
func (s *Signer) Resign(bundlePath string) error {
	s.log.Info("resigning bundle", "bundle", bundlePath)
	output, err := s.runner.Run("codesign", "--deep", "-f", "-s", "-", bundlePath)
	if err != nil {
		return fmt.Errorf("codesign %s: %w (output: %s)", bundlePath, err, output)
	}
	return nil
}

// ClearQuarantine recursively removes the quarantine extended attribute from
// the bundle. A failure leaves the app in a degraded but usable state; the
// caller does not roll back for it.
func (s *Signer) ClearQuarantine(bundlePath string) error {
	s.log.Info("removing quarantine attribute", "bundle", bundlePath)
	output, err := s.runner.Run("xattr", "-r", "-d", quarantineAttr, bundlePath)
	if err != nil {
		return fmt.Errorf("xattr %s: %w (output: %s)", bundlePath, err, output)
	}
	return nil
}
