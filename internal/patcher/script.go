package patcher

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"github.com/m0nnnna/macopengl-patcher/internal/config"
	"github.com/m0nnnna/macopengl-patcher/internal/plist"
	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

// wrapperVersion is the CFBundleVersion stamped into synthesized wrappers.
const wrapperVersion = "1.0"

// installScript sets an app up without touching its bundle: a launcher
// script under the install directory plus a minimal wrapper .app the user
// can open from Finder or the Dock. A leftover in-bundle patch is reverted
// first, so the original bundle executable is always the real binary when
// the launcher runs.
func (p *Patcher) installScript(app config.App) error {
	const op = "install launcher script"

	execPath := filepath.Join(app.BundlePath, app.Executable)
	p.log.Info("installing external launcher", "app", app.Name, "executable", execPath, "flags", app.Flags)

	if !system.FileExists(execPath) {
		return &Error{Op: op, App: app.Name, Err: ErrMissingExecutable,
			Help: fmt.Sprintf("is %s installed?", app.BundlePath)}
	}

	if IsPatched(execPath) {
		p.log.Info("reverting prior in-bundle patch", "app", app.Name)
		if err := os.Rename(SidecarPath(execPath), execPath); err != nil {
			return failure(op, app.Name, fmt.Errorf("restore original executable: %w", err))
		}
	}

	scriptPath := filepath.Join(p.cfg.InstallDir, system.ScriptName(app.Name))
	script := renderLaunchScript(scriptParams{
		Name:    app.Name,
		Flags:   app.Flags,
		Target:  execPath,
		LogFile: filepath.Join(p.cfg.LogDir, app.Name+"_launch.log"),
	})
	if err := system.WriteExecutable(scriptPath, script); err != nil {
		return failure(op, app.Name, fmt.Errorf("write launcher script: %w", err))
	}
	p.log.Info("launcher script created", "app", app.Name, "script", scriptPath)

	if err := p.createWrapperBundle(app, scriptPath); err != nil {
		return failure(op, app.Name, err)
	}
	return nil
}

// createWrapperBundle synthesizes the minimal .app directory tree whose
// executable is a one-line trampoline to the launcher script.
func (p *Patcher) createWrapperBundle(app config.App, scriptPath string) error {
	wrapperName := system.WrapperName(app.Name)
	bundlePath := filepath.Join(p.cfg.WrapperDir, wrapperName+".app")
	contentsDir := filepath.Join(bundlePath, "Contents")
	macosDir := filepath.Join(contentsDir, "MacOS")
	resourcesDir := filepath.Join(contentsDir, "Resources")

	for _, dir := range []string{macosDir, resourcesDir} {
		if err := system.EnsureDir(dir, 0755); err != nil {
			return fmt.Errorf("create wrapper bundle structure: %w", err)
		}
	}

	execPath := filepath.Join(macosDir, wrapperName)
	if err := system.WriteExecutable(execPath, renderTrampoline(scriptPath)); err != nil {
		return fmt.Errorf("write wrapper executable: %w", err)
	}

	infoCfg := plist.InfoPlistConfig{
		AppName:  wrapperName,
		BundleID: system.WrapperBundleID(app.Name),
		ExecName: wrapperName,
		Version:  wrapperVersion,
	}
	if err := plist.WriteInfoPlist(filepath.Join(contentsDir, "Info.plist"), infoCfg); err != nil {
		return fmt.Errorf("write Info.plist: %w", err)
	}

	// The icon is cosmetic; a missing or uncopyable one never fails the app.
	iconPath := filepath.Join(app.BundlePath, "Contents", "Resources", app.Name+".icns")
	if system.FileExists(iconPath) {
		if err := cp.Copy(iconPath, filepath.Join(resourcesDir, app.Name+".icns")); err != nil {
			p.log.Warn("icon copy failed", "app", app.Name, "error", err)
		}
	}

	p.log.Info("wrapper app created", "app", app.Name, "bundle", bundlePath)
	return nil
}
