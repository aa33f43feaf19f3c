package strip

import (
	"fmt"
	"os"
	"path/filepath"
)

// BackupManager preserves original file bytes under a sibling exclusion
// directory in the file's album, once per file. An existing backup is never
// overwritten, so the pristine copy survives repeated runs.
type BackupManager struct {
	DirName string // exclusion directory name, e.g. ".originals"
}

// Preserve copies data to <dir(path)>/<DirName>/<base(path)> with the given
// file mode. It reports whether a new backup was written; an existing backup
// at that location is left untouched.
func (b *BackupManager) Preserve(path string, data []byte, mode os.FileMode) (bool, error) {
	dstDir := filepath.Join(filepath.Dir(path), b.DirName)
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return false, fmt.Errorf("cannot create backup directory: %w", err)
	}

	dst := filepath.Join(dstDir, filepath.Base(path))
	if _, err := os.Stat(dst); err == nil {
		// First write wins.
		return false, nil
	}

	if err := os.WriteFile(dst, data, mode); err != nil {
		return false, fmt.Errorf("cannot write backup: %w", err)
	}
	return true, nil
}
