package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteUserOnlyFile atomically replaces path with data, readable and writable by the
// current user only. The content goes to a temp file in the same directory which is
// restricted before anything is written to it; the temp file is removed on any failure.
func WriteUserOnlyFile(path string, data []byte) (err error) {
	name := filepath.Base(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err = restrictToOwner(tmp); err != nil {
		return fmt.Errorf("failed to restrict permissions on %s: %w", name, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}
