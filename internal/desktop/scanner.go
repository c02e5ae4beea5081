// Package desktop reads the user's real OS desktop and hands entries off to
// the system shell.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	"github.com/arkadas/deskgrid/internal/apperrors"
	"github.com/arkadas/deskgrid/internal/icons"
)

// Entries the OS drops on every desktop that nobody wants to import.
var junkNames = map[string]bool{
	"desktop.ini": true,
	"thumbs.db":   true,
	".ds_store":   true,
}

var skippedExtensions = []string{".tmp", ".part"}

// DefaultDir returns the user's desktop directory for the current platform.
func DefaultDir() (string, error) {
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Desktop"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

// Scanner lists desktop entries as ephemeral DesktopFile values. Nothing it
// produces is persisted; only icons created from its output are.
type Scanner struct {
	fs  afero.Fs
	dir string
}

func NewScanner(fs afero.Fs, dir string) *Scanner {
	return &Scanner{fs: fs, dir: dir}
}

// Dir returns the scanned directory.
func (s *Scanner) Dir() string { return s.dir }

// List returns the importable files on the desktop in directory order.
// Subdirectories, dotfiles and shell metadata are skipped.
func (s *Scanner) List() ([]icons.DesktopFile, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, apperrors.New(apperrors.KindIO,
			fmt.Sprintf("Failed to read desktop directory %s.", s.dir), err)
	}

	var files []icons.DesktopFile
	for _, e := range entries {
		if e.IsDir() || !importable(e.Name()) {
			continue
		}
		files = append(files, icons.DesktopFile{
			Name: displayName(e.Name()),
			Path: filepath.Join(s.dir, e.Name()),
		})
	}
	return files, nil
}

func importable(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if junkNames[strings.ToLower(name)] {
		return false
	}
	lower := strings.ToLower(name)
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	return true
}

// displayName strips the final extension so "game.lnk" matches an icon
// named "game".
func displayName(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" || ext == fileName {
		return fileName
	}
	return strings.TrimSuffix(fileName, ext)
}
