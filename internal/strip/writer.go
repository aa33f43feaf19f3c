package strip

import (
	"fmt"
	"os"
)

// tmpSuffix is the reserved suffix for in-flight replacement files. Files
// carrying it are partial output from an interrupted run and safe to delete.
const tmpSuffix = ".tmp_nox"

// replaceAtomic writes data to a temporary sibling of path and renames it
// over the original. A same-directory rename is atomic, so a concurrent
// reader observes either the old file or the new one, never a partial write.
// On any failure before the rename the original is untouched.
func replaceAtomic(path string, data []byte, mode os.FileMode) error {
	tmp := path + tmpSuffix
	if err := os.WriteFile(tmp, data, mode); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot write temporary file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}
