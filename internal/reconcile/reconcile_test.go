package reconcile

import (
	"testing"

	"github.com/arkadas/deskgrid/internal/icons"
)

func TestProfiles_ModifiedImage(t *testing.T) {
	target := []icons.Record{{ID: "1", Name: "Chrome", ProgramLink: "C:\\chrome.exe", Image: "a.png"}}
	source := []icons.Record{{ID: "1", Name: "Chrome", ProgramLink: "C:\\chrome.exe", Image: "b.png"}}

	res := Profiles(target, source)

	if len(res.FilesToImport) != 0 || len(res.AlreadyImported) != 0 {
		t.Fatalf("expected only modified bucket, got %+v", res)
	}
	if len(res.Modified) != 1 {
		t.Fatalf("len(Modified) = %d, want 1", len(res.Modified))
	}
	diffs := res.Modified[0].Differences
	if len(diffs) != 1 || diffs[0] != icons.FieldImage {
		t.Fatalf("Differences = %v, want [image]", diffs)
	}
}

func TestProfiles_EmptyTargetImportsEverything(t *testing.T) {
	source := []icons.Record{{ID: "2", Name: "Notepad"}}
	res := Profiles(nil, source)

	if len(res.FilesToImport) != 1 || res.FilesToImport[0].ID != "2" {
		t.Fatalf("FilesToImport = %+v, want the single source record", res.FilesToImport)
	}
	if len(res.AlreadyImported) != 0 || len(res.Modified) != 0 {
		t.Fatalf("unexpected matches: %+v", res)
	}
}

func TestProfiles_PartitionIsCompleteAndDisjoint(t *testing.T) {
	target := []icons.Record{
		{ID: "1", Name: "Chrome", ProgramLink: "C:\\chrome.exe"},
		{ID: "2", Name: "Notepad", ProgramLink: "C:\\notepad.exe"},
		{ID: "3", Name: "Games", ProgramLink: "C:\\games.exe"},
	}
	source := []icons.Record{
		{ID: "1", Name: "Chrome", ProgramLink: "C:\\chrome.exe"},       // equal
		{ID: "2", Name: "Notepad++", ProgramLink: "C:\\notepad.exe"},   // modified
		{ID: "4", Name: "Terminal", ProgramLink: "C:\\terminal.exe"},   // new
		{ID: "", Name: "Broken"},                                       // malformed, unmatchable
	}

	res := Profiles(target, source)

	if res.Total() != len(source) {
		t.Fatalf("partition not exhaustive: total %d, source %d", res.Total(), len(source))
	}

	seen := make(map[string]int)
	for _, r := range res.FilesToImport {
		seen[r.ID+"/"+r.Name]++
	}
	for _, p := range res.AlreadyImported {
		seen[p.Other.ID+"/"+p.Other.Name]++
	}
	for _, m := range res.Modified {
		seen[m.Other.ID+"/"+m.Other.Name]++
	}
	for key, count := range seen {
		if count != 1 {
			t.Fatalf("source record %s classified %d times", key, count)
		}
	}
}

func TestProfiles_MalformedRecordNeverMatches(t *testing.T) {
	target := []icons.Record{{ID: "", Name: "Ghost"}}
	source := []icons.Record{{ID: "", Name: "Ghost"}}

	res := Profiles(target, source)
	if len(res.FilesToImport) != 1 {
		t.Fatalf("record without id should be importable, got %+v", res)
	}
}

func TestProfiles_SourceOrderPreserved(t *testing.T) {
	source := []icons.Record{
		{ID: "c", Name: "C"},
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	res := Profiles(nil, source)
	for i, r := range res.FilesToImport {
		if r.ID != source[i].ID {
			t.Fatalf("bucket order diverged at %d: got %q, want %q", i, r.ID, source[i].ID)
		}
	}
}

func TestProfiles_DoesNotMutateInputs(t *testing.T) {
	target := []icons.Record{{ID: "1", Name: "Chrome"}}
	source := []icons.Record{{ID: "1", Name: "Chromium"}}

	Profiles(target, source)

	if target[0].Name != "Chrome" || source[0].Name != "Chromium" {
		t.Fatalf("inputs mutated: target=%+v source=%+v", target, source)
	}
}
