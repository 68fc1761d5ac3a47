package sign

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResign(t *testing.T) {
	var calls [][]string
	runner := system.RunnerFunc(func(name string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{name}, args...))
		return nil, nil
	})

	s := New(runner, discard())
	require.NoError(t, s.Resign("/Applications/Slack.app"))

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"codesign", "--deep", "-f", "-s", "-", "/Applications/Slack.app"}, calls[0])
}

func TestResignFailure(t *testing.T) {
	runner := system.RunnerFunc(func(name string, args ...string) ([]byte, error) {
		return []byte("code object is not signed at all"), errors.New("exit status 1")
	})

	err := New(runner, discard()).Resign("/Applications/Slack.app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codesign")
	assert.Contains(t, err.Error(), "code object is not signed at all")
}

func TestClearQuarantine(t *testing.T) {
	var calls [][]string
	runner := system.RunnerFunc(func(name string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{name}, args...))
		return nil, nil
	})

	s := New(runner, discard())
	require.NoError(t, s.ClearQuarantine("/Applications/Slack.app"))

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"xattr", "-r", "-d", "com.apple.quarantine", "/Applications/Slack.app"}, calls[0])
}

func TestClearQuarantineFailure(t *testing.T) {
	runner := system.RunnerFunc(func(name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})

	err := New(runner, discard()).ClearQuarantine("/Applications/Slack.app")
	assert.Error(t, err)
}
