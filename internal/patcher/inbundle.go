package patcher

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/m0nnnna/macopengl-patcher/internal/backup"
	"github.com/m0nnnna/macopengl-patcher/internal/config"
	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

// sidecarSuffix names the preserved original executable. Its presence is the
// sole on-disk marker that an in-bundle patch is currently applied.
const sidecarSuffix = ".orig"

// SidecarPath returns the path where the pristine executable is kept while a
// wrapper script occupies its place.
func SidecarPath(execPath string) string {
	return execPath + sidecarSuffix
}

// IsPatched reports whether the executable at execPath currently carries an
// in-bundle patch.
func IsPatched(execPath string) bool {
	return system.FileExists(SidecarPath(execPath))
}

// patchInBundle replaces the bundle's executable with a wrapper script that
// re-execs the preserved original with the configured flags, then re-signs
// the bundle. If signing fails the original is moved back and the bundle is
// left exactly as found.
func (p *Patcher) patchInBundle(app config.App) error {
	const op = "patch in-bundle"

	execPath := filepath.Join(app.BundlePath, app.Executable)
	p.log.Info("patching in-bundle", "app", app.Name, "executable", execPath, "flags", app.Flags)

	if !system.FileExists(execPath) {
		return &Error{Op: op, App: app.Name, Err: ErrMissingExecutable,
			Help: fmt.Sprintf("is %s installed?", app.BundlePath)}
	}

	sidecar := SidecarPath(execPath)
	if !IsPatched(execPath) {
		backupPath, err := backup.Create(execPath, p.clock)
		if err != nil {
			return failure(op, app.Name, err)
		}
		p.log.Info("backup created", "app", app.Name, "backup", backupPath)

		if err := os.Rename(execPath, sidecar); err != nil {
			return failure(op, app.Name, fmt.Errorf("save original executable: %w", err))
		}
	} else {
		// Re-run on an already patched bundle: keep the existing sidecar and
		// just rewrite the wrapper.
		p.log.Info("original already saved", "app", app.Name, "sidecar", sidecar)
	}

	script := renderLaunchScript(scriptParams{
		Name:    app.Name,
		Flags:   app.Flags,
		Target:  sidecar,
		LogFile: filepath.Join(p.cfg.LogDir, app.Name+"_wrapper.log"),
	})
	if err := system.WriteExecutable(execPath, script); err != nil {
		return failure(op, app.Name, fmt.Errorf("write wrapper script: %w", err))
	}

	if err := p.signer.Resign(app.BundlePath); err != nil {
		p.log.Warn("signing failed, restoring original executable", "app", app.Name, "error", err)
		if restoreErr := os.Rename(sidecar, execPath); restoreErr != nil {
			return failure(op, app.Name,
				fmt.Errorf("%w and rollback failed: %v", ErrSigningFailed, restoreErr))
		}
		return &Error{Op: op, App: app.Name, Err: fmt.Errorf("%w: %v", ErrSigningFailed, err)}
	}

	if err := p.signer.ClearQuarantine(app.BundlePath); err != nil {
		// Degraded but usable: Gatekeeper may still warn on launch.
		p.log.Warn("quarantine attribute not cleared", "app", app.Name, "error", err)
	}

	return nil
}
