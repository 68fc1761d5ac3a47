// Package backup creates timestamped copies of files before they are
// mutated. Backups live in a Backups directory next to the original and are
// never deleted automatically.
package backup

import (
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"

	"github.com/m0nnnna/macopengl-patcher/internal/system"
)

// timestampLayout matches the backup file name granularity: one second.
const timestampLayout = "20060102_150405"

// Create copies the file at path into a sibling Backups directory, naming
// the copy <base>.backup_<timestamp>. An existing backup is never
// overwritten; if two backups land in the same second a numeric suffix
// disambiguates. Returns the backup path.
func Create(path string, clock clockwork.Clock) (string, error) {
	if !system.FileExists(path) {
		return "", fmt.Errorf("backup source %s not found", path)
	}

	dir := filepath.Join(filepath.Dir(path), "Backups")
	if err := system.EnsureDir(dir, 0755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	stamp := clock.Now().Format(timestampLayout)
	base := filepath.Base(path)
	dst := filepath.Join(dir, fmt.Sprintf("%s.backup_%s", base, stamp))
	for n := 1; system.FileExists(dst); n++ {
		dst = filepath.Join(dir, fmt.Sprintf("%s.backup_%s_%d", base, stamp, n))
	}

	if err := system.CopyFile(path, dst); err != nil {
		return "", fmt.Errorf("copy to backup: %w", err)
	}
	return dst, nil
}
