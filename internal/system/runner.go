// Package system provides low-level utilities shared by the patcher:
// external command execution, file operations, and the naming conventions
// for generated scripts and wrapper bundles.
package system

import (
	"fmt"
	"os/exec"
)

// Runner executes an external command and returns its combined output.
// The patcher shells out to codesign, xattr, lsregister and killall; tests
// substitute a fake Runner so no real system tool is ever invoked.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(name string, args ...string) ([]byte, error)

// Run calls f.
func (f RunnerFunc) Run(name string, args ...string) ([]byte, error) {
	return f(name, args...)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec. Output is captured rather
// than streamed so failures can be reported with the tool's own message.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(name string, args ...string) ([]byte, error) {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s failed: %w", name, err)
	}
	return output, nil
}
