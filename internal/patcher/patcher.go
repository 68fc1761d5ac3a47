// Package patcher rewrites installed macOS app bundles so they launch with
// forced OpenGL flags. Each configured app is handled by one of two
// strategies: an in-bundle patch that swaps the executable for a wrapper
// script, or an external launcher script paired with a synthetic wrapper
// app. Every run ends with a Launch Services refresh.
package patcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sys/unix"

	"github.com/m0nnnna/macopengl-patcher/internal/config"
	"github.com/m0nnnna/macopengl-patcher/internal/launchservices"
	"github.com/m0nnnna/macopengl-patcher/internal/sign"
	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

// Patcher processes a configuration table sequentially. Each app is taken to
// completion, including any rollback, before the next begins.
type Patcher struct {
	cfg    *config.Config
	signer *sign.Signer
	ls     *launchservices.Refresher
	clock  clockwork.Clock
	log    *slog.Logger
	out    io.Writer
}

// Result is the outcome for a single configured app.
type Result struct {
	App config.App
	Err error
}

// OK reports whether the app was processed successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// New returns a Patcher that shells out through runner and reads the clock
// for backup timestamps.
func New(cfg *config.Config, runner system.Runner, clock clockwork.Clock, log *slog.Logger) *Patcher {
	if log == nil {
		log = slog.Default()
	}
	return &Patcher{
		cfg:    cfg,
		signer: sign.New(runner, log),
		ls:     launchservices.New(runner, log),
		clock:  clock,
		log:    log,
		out:    os.Stdout,
	}
}

// SetOutput redirects the human-readable per-app progress, normally stdout.
func (p *Patcher) SetOutput(w io.Writer) {
	p.out = w
}

// Run processes every configured app in declaration order and finishes with
// a Launch Services refresh. Per-app failures are collected and reported;
// only a permission failure aborts the run early, since every remaining
// write would fail the same way. The returned error is non-nil only for that
// fatal case.
func (p *Patcher) Run() ([]Result, error) {
	if err := p.preflight(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(p.cfg.Apps))
	for _, app := range p.cfg.Apps {
		var err error
		switch app.EffectiveStrategy() {
		case config.StrategyScript:
			err = p.installScript(app)
		default:
			err = p.patchInBundle(app)
		}

		results = append(results, Result{App: app, Err: err})
		p.report(app, err)

		if errors.Is(err, ErrPermissionDenied) {
			return results, err
		}
	}

	p.ls.Reset()
	return results, nil
}

// preflight creates the output directories and verifies they are writable
// before any bundle is mutated.
func (p *Patcher) preflight() error {
	for _, dir := range []string{p.cfg.InstallDir, p.cfg.WrapperDir, p.cfg.LogDir} {
		if err := system.EnsureDir(dir, 0755); err != nil {
			return failure("preflight", dir, err)
		}
	}

	for _, dir := range []string{p.cfg.InstallDir, p.cfg.WrapperDir} {
		if err := unix.Access(dir, unix.W_OK); err != nil {
			help := sudoHint
			if unix.Geteuid() == 0 {
				help = fmt.Sprintf("%s is not writable even as root; check mount options", dir)
			}
			return &Error{Op: "preflight", App: dir,
				Err: fmt.Errorf("%w: %s not writable", ErrPermissionDenied, dir), Help: help}
		}
	}
	return nil
}

// report prints the per-app outcome line.
func (p *Patcher) report(app config.App, err error) {
	switch {
	case err == nil && app.EffectiveStrategy() == config.StrategyScript:
		fmt.Fprintf(p.out, "%s %s set up with external script. Use '%s/%s.app'.\n",
			color.GreenString("ok"), app.Name, p.cfg.WrapperDir, system.WrapperName(app.Name))
	case err == nil:
		fmt.Fprintf(p.out, "%s %s patched in-bundle. Launch normally.\n",
			color.GreenString("ok"), app.Name)
	default:
		fmt.Fprintf(p.out, "%s %s: %v\n", color.RedString("failed"), app.Name, err)
	}
}

// Summarize prints the closing status line for a finished run.
func (p *Patcher) Summarize(results []Result) {
	ok := 0
	for _, r := range results {
		if r.OK() {
			ok++
		}
	}
	fmt.Fprintf(p.out, "Setup complete: %d of %d apps patched. "+
		"In-bundle apps launch normally; script apps via their '<Name> OpenGL.app' wrapper.\n",
		ok, len(results))
}
