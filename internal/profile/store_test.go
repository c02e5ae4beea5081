package profile

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadas/deskgrid/internal/apperrors"
	"github.com/arkadas/deskgrid/internal/icons"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(afero.NewMemMapFs(), "/home/bob/.deskgrid/profiles")
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := []icons.Record{
		{ID: "1", Row: 0, Col: 0, Name: "Chrome", ProgramLink: "C:\\chrome.exe", Args: []string{"--incognito"}},
		{ID: "2", Row: 0, Col: 1, Name: "Docs", WebsiteLink: "https://docs.example.com"},
	}

	require.NoError(t, s.Save("work", records))

	got, err := s.Load("work")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestStore_LoadNormalizesRecords(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.fs.MkdirAll(s.Dir(), 0o700))
	doc := `[{"id":" 1 ","row":-1,"col":0,"name":" Chrome ","args":[]}]`
	require.NoError(t, afero.WriteFile(s.fs, s.path("work"), []byte(doc), 0o600))

	got, err := s.Load("work")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Chrome", got[0].Name)
	assert.Equal(t, 0, got[0].Row)
	assert.Nil(t, got[0].Args)
}

func TestStore_LoadMissingProfile(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load("nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_LoadMalformedDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.fs.MkdirAll(s.Dir(), 0o700))
	require.NoError(t, afero.WriteFile(s.fs, s.path("broken"), []byte("{not json"), 0o600))

	_, err := s.Load("broken")
	require.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindMalformed, kind)
}

func TestStore_ListSorted(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("zeta", nil))
	require.NoError(t, s.Save("alpha", nil))
	require.NoError(t, afero.WriteFile(s.fs, s.Dir()+"/ignore.txt", []byte("x"), 0o600))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestStore_ListMissingDirIsEmpty(t *testing.T) {
	s := newTestStore(t)
	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_DeleteAndExists(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("temp", nil))

	ok, err := s.Exists("temp")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete("temp"))

	ok, err = s.Exists("temp")
	require.NoError(t, err)
	assert.False(t, ok)

	err = s.Delete("temp")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_RenameRefusesConflict(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("a", nil))
	require.NoError(t, s.Save("b", nil))

	err := s.Rename("a", "b")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	require.NoError(t, s.Rename("a", "c"))
	ok, err := s.Exists("c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "work", false},
		{"with spaces inside", "home office", false},
		{"empty", "", true},
		{"leading space", " work", true},
		{"path separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot dot", "..", true},
		{"json suffix", "work.json", true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.input)
			if tc.wantErr && err == nil {
				t.Fatalf("ValidateName(%q) = nil, want error", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("ValidateName(%q) = %v, want nil", tc.input, err)
			}
		})
	}
}
