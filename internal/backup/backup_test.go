package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) clockwork.Clock {
	t.Helper()
	return clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC))
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Google Chrome")
	require.NoError(t, os.WriteFile(src, []byte("mach-o bytes"), 0755))

	got, err := Create(src, fixedClock(t))
	require.NoError(t, err)

	want := filepath.Join(dir, "Backups", "Google Chrome.backup_20240301_123045")
	assert.Equal(t, want, got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "mach-o bytes", string(data), "backup must be byte-identical")
}

func TestCreateMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Create(filepath.Join(dir, "nope"), fixedClock(t))
	assert.Error(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "Backups"), "no side effects on failure")
}

func TestCreateNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app")
	require.NoError(t, os.WriteFile(src, []byte("v1"), 0755))
	clock := fixedClock(t)

	first, err := Create(src, clock)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(src, []byte("v2"), 0755))
	second, err := Create(src, clock)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first+"_1", second, "same-second collision gets a counter suffix")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data), "existing backup untouched")
}
