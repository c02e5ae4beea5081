package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadas/deskgrid/internal/apperrors"
	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/profile"
)

func newTestService(t *testing.T, cols int, seed []icons.Record) (*Service, *profile.Store) {
	t.Helper()
	store := profile.NewStore(afero.NewMemMapFs(), "/profiles")
	require.NoError(t, store.Save("work", seed))
	svc := NewService(store, cols)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc, store
}

func TestImportRecord_PreservesIDAndReassignsSlot(t *testing.T) {
	svc, store := newTestService(t, 3, []icons.Record{
		{ID: "a", Row: 0, Col: 0, Name: "mail"},
	})

	got, err := svc.ImportRecord("work", icons.Record{ID: "b", Row: 7, Col: 7, Name: "git"})
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, 0, got.Row)
	assert.Equal(t, 1, got.Col)

	records, err := store.Load("work")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "git", records[1].Name)
}

func TestImportRecord_DuplicateID(t *testing.T) {
	svc, _ := newTestService(t, 3, []icons.Record{{ID: "a", Name: "mail"}})

	_, err := svc.ImportRecord("work", icons.Record{ID: "a", Name: "mail"})
	require.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindConflict, kind)
}

func TestImportFile_AssignsFreshID(t *testing.T) {
	svc, _ := newTestService(t, 3, nil)

	got, err := svc.ImportFile("work", icons.DesktopFile{Name: "game", Path: "/d/game.lnk"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "game", got.Name)
	assert.Equal(t, "/d/game.lnk", got.ProgramLink)
}

func TestImportAll_ContinuesPastFailures(t *testing.T) {
	svc, store := newTestService(t, 2, nil)

	var ticks [][2]int
	svc.OnProgress = func(done, total int) { ticks = append(ticks, [2]int{done, total}) }

	report, err := svc.ImportAll(context.Background(), Batch{
		Profile: "work",
		Records: []icons.Record{
			{ID: "a", Name: "mail"},
			{ID: "b", Name: "   "}, // unusable, no name
		},
		Files: []icons.DesktopFile{{Name: "game", Path: "/d/game.lnk"}},
	})
	require.NoError(t, err)

	assert.Len(t, report.Imported, 2)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "   ", report.Failures[0].Name)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, ticks)

	records, err := store.Load("work")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Row-major fill on a two column grid.
	assert.Equal(t, [2]int{0, 0}, [2]int{records[0].Row, records[0].Col})
	assert.Equal(t, [2]int{0, 1}, [2]int{records[1].Row, records[1].Col})
}

func TestImportAll_Cancelled(t *testing.T) {
	svc, store := newTestService(t, 2, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ImportAll(ctx, Batch{
		Profile: "work",
		Records: []icons.Record{{ID: "a", Name: "mail"}},
	})
	require.ErrorIs(t, err, context.Canceled)

	records, err := store.Load("work")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestImportAll_CancelledMidBatchKeepsPlacedRecords(t *testing.T) {
	svc, store := newTestService(t, 2, nil)

	ctx, cancel := context.WithCancel(context.Background())
	svc.OnProgress = func(done, total int) {
		if done == 1 {
			cancel()
		}
	}

	report, err := svc.ImportAll(ctx, Batch{
		Profile: "work",
		Records: []icons.Record{
			{ID: "a", Name: "mail"},
			{ID: "b", Name: "git"},
		},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, report.Imported, 1)
	assert.Equal(t, "mail", report.Imported[0].Name)

	// The first record made it onto the grid before the cancel, so it has
	// to survive on disk.
	records, err := store.Load("work")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
}

func TestNextFreeSlot_WrapsToNextRow(t *testing.T) {
	svc, _ := newTestService(t, 2, nil)

	row, col := svc.nextFreeSlot([]icons.Record{
		{ID: "a", Row: 0, Col: 0},
		{ID: "b", Row: 0, Col: 1},
	})
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}
