package patcher

import (
	"errors"
	"fmt"
	"io/fs"
)

// Failure categories. Per-app failures are reported and the run continues;
// ErrPermissionDenied aborts the whole run because every remaining app would
// hit the same wall.
var (
	ErrMissingExecutable = errors.New("executable not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrSigningFailed     = errors.New("signing failed")
)

// Error is a patch failure with enough context to act on.
type Error struct {
	Op   string // operation that failed, e.g. "patch in-bundle"
	App  string // display name of the app being processed
	Err  error  // underlying error
	Help string // actionable guidance for the user, if any
}

func (e *Error) Error() string {
	if e.Help != "" {
		return fmt.Sprintf("%s %s: %v\n  hint: %s", e.Op, e.App, e.Err, e.Help)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.App, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

const sudoHint = "re-run with sudo: patching installed bundles and /usr/local/bin requires elevated privileges"

// failure wraps err for one app, promoting OS permission errors to the fatal
// ErrPermissionDenied category.
func failure(op, app string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &Error{Op: op, App: app, Err: fmt.Errorf("%w: %v", ErrPermissionDenied, err), Help: sudoHint}
	}
	return &Error{Op: op, App: app, Err: err}
}
