package main

import (
	"strings"
	"testing"

	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/importer"
	"github.com/arkadas/deskgrid/internal/reconcile"
)

func TestImportSummary(t *testing.T) {
	t.Run("clean_batch", func(t *testing.T) {
		got := importSummary(importer.Report{
			Imported: []icons.Record{{ID: "a"}, {ID: "b"}},
		}, false)
		if got != "Imported 2 icon(s)." {
			t.Fatalf("importSummary = %q", got)
		}
	})

	t.Run("with_failures", func(t *testing.T) {
		got := importSummary(importer.Report{
			Imported: []icons.Record{{ID: "a"}},
			Failures: []importer.Failure{{Name: "bad", Err: errString("no name")}},
		}, false)
		if !strings.Contains(got, "1 item(s) failed") || !strings.Contains(got, "bad: no name") {
			t.Fatalf("importSummary = %q", got)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		got := importSummary(importer.Report{}, true)
		if !strings.Contains(got, "cancelled") {
			t.Fatalf("importSummary = %q", got)
		}
	})
}

func TestCompareSummary(t *testing.T) {
	got := compareSummary("home", reconcile.Result{
		FilesToImport:   []icons.Record{{ID: "a"}},
		AlreadyImported: []icons.Pair{{}, {}},
		Modified:        []icons.ModifiedPair{{}},
	})
	want := "home: 1 to import, 2 already imported, 1 modified"
	if got != want {
		t.Fatalf("compareSummary = %q, want %q", got, want)
	}
}

func TestScanSummary(t *testing.T) {
	got := scanSummary(reconcile.FileResult{
		FilesToImport:   []icons.DesktopFile{{Name: "a"}},
		AlreadyImported: []reconcile.FilePair{{}},
		NameOnlyMatches: []reconcile.FileMatch{{}},
		PathOnlyMatches: []reconcile.FileMatch{{}, {}},
	})
	want := "5 file(s): 1 to import, 1 already imported, 3 partial matches"
	if got != want {
		t.Fatalf("scanSummary = %q, want %q", got, want)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
