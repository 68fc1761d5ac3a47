// Package launchservices refreshes the Launch Services database after
// bundle modifications so Finder and the Dock pick up the changes.
package launchservices

import (
	"log/slog"

	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

const lsregisterPath = "/System/Library/Frameworks/CoreServices.framework/Versions/A/Frameworks/LaunchServices.framework/Versions/A/Support/lsregister"

// Refresher resets the Launch Services registration database and restarts
// the Dock.
type Refresher struct {
	runner system.Runner
	log    *slog.Logger
}

// New returns a Refresher using the given command runner.
func New(runner system.Runner, log *slog.Logger) *Refresher {
	if log == nil {
		log = slog.Default()
	}
	return &Refresher{runner: runner, log: log}
}

// Reset kills and rebuilds the Launch Services database across the local,
// system and user domains, then restarts the Dock. Both steps are
// best-effort: failures are logged and never abort a patch run. The Dock
// restart is skipped when the database reset fails, since the stale Dock is
// then no worse than the stale database.
func (r *Refresher) Reset() {
	r.log.Info("resetting launch services database")
	output, err := r.runner.Run(lsregisterPath,
		"-kill", "-r", "-domain", "local", "-domain", "system", "-domain", "user")
	if err != nil {
		r.log.Warn("launch services reset failed", "error", err, "output", string(output))
		return
	}

	r.log.Info("restarting Dock")
	if output, err := r.runner.Run("killall", "Dock"); err != nil {
		r.log.Warn("Dock restart failed", "error", err, "output", string(output))
	}
}
