package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arkadas/deskgrid/internal/icons"
)

const (
	testProfilesDir = "/home/test/.deskgrid/profiles"
	testDesktopDir  = "/home/test/Desktop"
)

// withTestEnv swaps the process-level filesystem and path lookups for an
// in-memory equivalent so commands run hermetically.
func withTestEnv(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	prevFs := osFs
	prevConfig := configPathFn
	prevProfiles := profilesDirFn
	prevDesktop := desktopDirFn
	prevTerminal := isTerminal
	prevPick := pickProfile

	osFs = fs
	configPathFn = func() (string, error) { return "/home/test/.deskgrid/config.toml", nil }
	profilesDirFn = func() (string, error) { return testProfilesDir, nil }
	desktopDirFn = func() (string, error) { return testDesktopDir, nil }
	isTerminal = func(_ int) bool { return false }
	pickProfile = func(names []string) (string, error) { return names[0], nil }

	t.Cleanup(func() {
		osFs = prevFs
		configPathFn = prevConfig
		profilesDirFn = prevProfiles
		desktopDirFn = prevDesktop
		isTerminal = prevTerminal
		pickProfile = prevPick
	})
	return fs
}

func writeProfile(t *testing.T, fs afero.Fs, name string, records []icons.Record) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	path := filepath.Join(testProfilesDir, name+".json")
	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestResolveProfile_FlagWins(t *testing.T) {
	fs := withTestEnv(t)
	writeProfile(t, fs, "work", nil)
	writeProfile(t, fs, "home", nil)

	env, err := setup(&globalOptions{})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	name, err := resolveProfile(env, "home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "home" {
		t.Fatalf("expected home, got %q", name)
	}
}

func TestResolveProfile_SingleProfileNeedsNoPrompt(t *testing.T) {
	fs := withTestEnv(t)
	writeProfile(t, fs, "work", nil)

	env, err := setup(&globalOptions{})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	name, err := resolveProfile(env, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "work" {
		t.Fatalf("expected work, got %q", name)
	}
}

func TestResolveProfile_NonInteractiveError(t *testing.T) {
	fs := withTestEnv(t)
	writeProfile(t, fs, "work", nil)
	writeProfile(t, fs, "home", nil)

	env, err := setup(&globalOptions{})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := resolveProfile(env, ""); err == nil {
		t.Fatalf("expected error for ambiguous profile in non-interactive shell")
	}
}

func TestResolveProfile_ConfigDefault(t *testing.T) {
	fs := withTestEnv(t)
	writeProfile(t, fs, "work", nil)
	writeProfile(t, fs, "home", nil)
	if err := afero.WriteFile(fs, "/home/test/.deskgrid/config.toml",
		[]byte("default_profile = \"home\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env, err := setup(&globalOptions{})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	name, err := resolveProfile(env, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "home" {
		t.Fatalf("expected home, got %q", name)
	}
}
