package desktop

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_List(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/home/bob/Desktop"
	require.NoError(t, fs.MkdirAll(filepath.Join(dir, "some folder"), 0o755))
	for _, name := range []string{"game.lnk", "notes.txt", "desktop.ini", ".hidden", "partial.part"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := NewScanner(fs, dir).List()
	require.NoError(t, err)

	names := make(map[string]string, len(files))
	for _, f := range files {
		names[f.Name] = f.Path
	}
	assert.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "game.lnk"), names["game"])
	assert.Equal(t, filepath.Join(dir, "notes.txt"), names["notes"])
}

func TestScanner_ListMissingDir(t *testing.T) {
	_, err := NewScanner(afero.NewMemMapFs(), "/nope").List()
	require.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"game.lnk", "game"},
		{"archive.tar.gz", "archive.tar"},
		{"Makefile", "Makefile"},
		{".profile", ".profile"},
	}
	for _, tc := range tests {
		if got := displayName(tc.in); got != tc.want {
			t.Fatalf("displayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestImportable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"game.lnk", true},
		{"Thumbs.db", false},
		{"desktop.ini", false},
		{".DS_Store", false},
		{"download.tmp", false},
		{"video.part", false},
	}
	for _, tc := range tests {
		if got := importable(tc.name); got != tc.want {
			t.Fatalf("importable(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
