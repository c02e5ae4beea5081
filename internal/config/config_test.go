package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadas/deskgrid/internal/apperrors"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/nope/config.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c/config.toml",
		[]byte("default_profile = \"work\"\n"), 0o600))

	cfg, err := Load(fs, "/c/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "work", cfg.DefaultProfile)
	assert.Equal(t, Default().Grid, cfg.Grid)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c/config.toml",
		[]byte("grid = {{"), 0o600))

	_, err := Load(fs, "/c/config.toml")
	require.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindMalformed, kind)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/c/config.toml",
		[]byte("log_level = \"loud\"\n"), 0o600))

	_, err := Load(fs, "/c/config.toml")
	require.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, kind)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := Config{
		ProfilesDir:    "/data/profiles",
		DesktopDir:     "/home/bob/Desktop",
		DefaultProfile: "work",
		Grid:           Grid{Rows: 4, Cols: 6},
		LogLevel:       "debug",
	}

	require.NoError(t, Save(fs, "/c/config.toml", want))

	got, err := Load(fs, "/c/config.toml")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
