// Package profile persists named icon collections as JSON documents, one
// file per profile.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/arkadas/deskgrid/internal/apperrors"
	"github.com/arkadas/deskgrid/internal/files"
	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/logger"
)

const documentExt = ".json"

// DefaultDir returns the per-user profiles directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".deskgrid", "profiles"), nil
}

// Store reads and writes whole profile documents. Collections are loaded
// fully before any reconciliation starts and never mutated in place, so the
// store needs no locking.
type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the directory this store persists into.
func (s *Store) Dir() string { return s.dir }

// ValidateName rejects profile names that would escape the profiles
// directory or collide with the document extension.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.New(apperrors.KindValidation, "Profile name cannot be empty.", nil)
	}
	if trimmed != name {
		return apperrors.New(apperrors.KindValidation, "Profile name cannot start or end with spaces.", nil)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("Profile name %q cannot contain path separators.", name), nil)
	}
	if strings.HasSuffix(name, documentExt) {
		return apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("Profile name %q cannot end in %s.", name, documentExt), nil)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+documentExt)
}

// List returns all profile names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.New(apperrors.KindIO, "Failed to read the profiles directory.", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), documentExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), documentExt))
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a profile document is present.
func (s *Store) Exists(name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	ok, err := afero.Exists(s.fs, s.path(name))
	if err != nil {
		return false, apperrors.IO(err)
	}
	return ok, nil
}

// Load reads one profile's collection. Records pass through a single
// normalization step here; records missing an id are kept as-is and simply
// never match anything during reconciliation.
func (s *Store) Load(name string) ([]icons.Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.KindNotFound,
				fmt.Sprintf("Profile %q does not exist.", name), err)
		}
		return nil, apperrors.New(apperrors.KindIO,
			fmt.Sprintf("Failed to read profile %q.", name), err)
	}

	var records []icons.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.New(apperrors.KindMalformed,
			fmt.Sprintf("Profile %q is not a valid profile document.", name), err)
	}
	for i := range records {
		records[i] = icons.Normalize(records[i])
	}
	return records, nil
}

// Save writes one profile's collection atomically.
func (s *Store) Save(name string, records []icons.Record) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return apperrors.New(apperrors.KindIO, "Failed to create the profiles directory.", err)
	}
	if records == nil {
		records = []icons.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.New(apperrors.KindIO,
			fmt.Sprintf("Failed to encode profile %q.", name), err)
	}
	if err := files.AtomicWrite(s.fs, s.path(name), data, 0o600); err != nil {
		return apperrors.New(apperrors.KindIO,
			fmt.Sprintf("Failed to write profile %q.", name), err)
	}
	logger.Debug("Profile saved", "profile", name, "icons", len(records))
	return nil
}

// Delete removes a profile document.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.fs.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return apperrors.New(apperrors.KindNotFound,
				fmt.Sprintf("Profile %q does not exist.", name), err)
		}
		return apperrors.New(apperrors.KindIO,
			fmt.Sprintf("Failed to delete profile %q.", name), err)
	}
	return nil
}

// Rename moves a profile document to a new name, refusing to clobber an
// existing profile.
func (s *Store) Rename(oldName, newName string) error {
	if err := ValidateName(oldName); err != nil {
		return err
	}
	if err := ValidateName(newName); err != nil {
		return err
	}
	exists, err := s.Exists(newName)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.New(apperrors.KindConflict,
			fmt.Sprintf("Profile %q already exists.", newName), nil)
	}
	if err := s.fs.Rename(s.path(oldName), s.path(newName)); err != nil {
		if os.IsNotExist(err) {
			return apperrors.New(apperrors.KindNotFound,
				fmt.Sprintf("Profile %q does not exist.", oldName), err)
		}
		return apperrors.New(apperrors.KindIO,
			fmt.Sprintf("Failed to rename profile %q.", oldName), err)
	}
	return nil
}
