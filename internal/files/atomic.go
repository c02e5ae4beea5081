package files

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/arkadas/deskgrid/internal/logger"
)

// AtomicWrite writes data to a temp file on fs and renames it into place.
// Profile documents are small JSON files and a torn write would corrupt a
// whole profile, so every persisted document goes through here.
func AtomicWrite(fs afero.Fs, path string, data []byte, perms os.FileMode) error {
	if err := RejectSymlinkPath(fs, path); err != nil {
		return err
	}
	dir := parentOf(path)
	tmpFile, err := afero.TempFile(fs, dir, "deskgrid-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	cleanup := true
	defer func() {
		if cleanup {
			tmpFile.Close()
			fs.Remove(tmpPath)
		}
	}()

	if err := fs.Chmod(tmpPath, perms); err != nil {
		return fmt.Errorf("failed to set temp file permissions: %w", err)
	}
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := rename(fs, tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to destination: %w", err)
	}
	if err := syncDir(fs, dir); err != nil {
		logger.Warn("Directory fsync failed (safe to ignore on some platforms)", "path", dir, "error", err)
	}

	cleanup = false
	return nil
}

// rename uses the platform-atomic rename on the real filesystem and plain
// Rename for everything else (memory-backed test filesystems).
func rename(fs afero.Fs, oldPath, newPath string) error {
	if _, ok := fs.(*afero.OsFs); ok {
		return renameAtomic(oldPath, newPath)
	}
	return fs.Rename(oldPath, newPath)
}

func syncDir(fs afero.Fs, dir string) error {
	if _, ok := fs.(*afero.OsFs); !ok {
		return nil
	}
	return syncDirOS(dir)
}

// parentOf returns the directory portion of path, accepting either
// separator style.
func parentOf(path string) string {
	last := -1
	for i := 0; i < len(path); i++ {
		if path[i] == '/' || path[i] == '\\' {
			last = i
		}
	}
	if last <= 0 {
		return "."
	}
	return path[:last]
}
