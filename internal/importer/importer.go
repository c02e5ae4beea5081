// Package importer copies icons into a profile, from another profile or
// straight from files found on the live desktop. Batches run sequentially
// and a single bad entry never sinks the rest of the batch.
package importer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arkadas/deskgrid/internal/apperrors"
	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/logger"
	"github.com/arkadas/deskgrid/internal/profile"
)

// ProgressFunc is called after every processed item, successful or not.
type ProgressFunc func(done, total int)

// Failure records one item that could not be imported. The batch carries on
// past it.
type Failure struct {
	Name string
	Err  error
}

// Report summarises a finished batch.
type Report struct {
	Imported []icons.Record
	Failures []Failure
}

// Service writes imported icons into profiles through the store. Grid slots
// for new icons are assigned row-major into the first free cell.
type Service struct {
	store *profile.Store
	cols  int

	// OnProgress, when set, is invoked after each item of a batch.
	OnProgress ProgressFunc

	newID func() string
}

// NewService returns a Service placing new icons on a grid gridCols columns
// wide. Rows grow without bound; columns wrap.
func NewService(store *profile.Store, gridCols int) *Service {
	if gridCols < 1 {
		gridCols = 1
	}
	return &Service{
		store: store,
		cols:  gridCols,
		newID: uuid.NewString,
	}
}

// ImportRecord copies an icon from another profile into profileName. The id
// is preserved so later comparisons recognise the icon as already imported;
// only icons that never had an id get a fresh one. The grid slot is always
// reassigned to the first free cell of the target.
func (s *Service) ImportRecord(profileName string, rec icons.Record) (icons.Record, error) {
	current, err := s.store.Load(profileName)
	if err != nil {
		return icons.Record{}, err
	}
	imported, err := s.place(current, rec)
	if err != nil {
		return icons.Record{}, err
	}
	if err := s.store.Save(profileName, append(current, imported)); err != nil {
		return icons.Record{}, err
	}
	return imported, nil
}

// ImportFile creates a brand new icon from a desktop file and adds it to
// profileName. The icon links back to the file on disk.
func (s *Service) ImportFile(profileName string, file icons.DesktopFile) (icons.Record, error) {
	rec, err := s.fromFile(file)
	if err != nil {
		return icons.Record{}, err
	}
	return s.ImportRecord(profileName, rec)
}

// Batch is the input of ImportAll: icons taken from another profile plus raw
// desktop files, all destined for the same target profile.
type Batch struct {
	Profile string
	Records []icons.Record
	Files   []icons.DesktopFile
}

// ImportAll processes the batch sequentially. One failing item is recorded
// in the report and the batch continues; a cancelled context stops the run
// after the current item, but everything placed up to that point is still
// written to the profile before the context error is returned. OnProgress
// fires after every item.
func (s *Service) ImportAll(ctx context.Context, batch Batch) (Report, error) {
	var report Report

	current, err := s.store.Load(batch.Profile)
	if err != nil {
		return report, err
	}

	total := len(batch.Records) + len(batch.Files)
	done := 0
	step := func(name string, rec icons.Record, err error) {
		if err != nil {
			logger.Warn("import item failed", "name", name, "error", err)
			report.Failures = append(report.Failures, Failure{Name: name, Err: err})
		} else {
			current = append(current, rec)
			report.Imported = append(report.Imported, rec)
		}
		done++
		if s.OnProgress != nil {
			s.OnProgress(done, total)
		}
	}

	var ctxErr error
	for _, rec := range batch.Records {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		placed, err := s.place(current, rec)
		step(rec.Name, placed, err)
	}
	for _, file := range batch.Files {
		if ctxErr != nil {
			break
		}
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		rec, err := s.fromFile(file)
		if err == nil {
			rec, err = s.place(current, rec)
		}
		step(file.Name, rec, err)
	}

	// Cancellation must not lose records that were already placed, so the
	// partial batch is saved before the context error surfaces.
	if len(report.Imported) > 0 {
		if err := s.store.Save(batch.Profile, current); err != nil {
			return report, err
		}
	}
	logger.Info("import batch finished",
		"profile", batch.Profile,
		"imported", len(report.Imported),
		"failed", len(report.Failures))
	return report, ctxErr
}

// place normalizes rec, takes care of the id and assigns the first free
// grid slot among existing.
func (s *Service) place(existing []icons.Record, rec icons.Record) (icons.Record, error) {
	rec = icons.Normalize(rec)
	if rec.Name == "" {
		return icons.Record{}, apperrors.New(apperrors.KindValidation,
			"Cannot import an icon without a name.", nil)
	}
	if rec.ID == "" {
		rec.ID = s.newID()
	}
	for _, e := range existing {
		if e.ID == rec.ID {
			return icons.Record{}, apperrors.New(apperrors.KindConflict,
				"Icon \""+rec.Name+"\" is already in the profile.", nil)
		}
	}
	rec.Row, rec.Col = s.nextFreeSlot(existing)
	return rec, nil
}

func (s *Service) fromFile(file icons.DesktopFile) (icons.Record, error) {
	name := strings.TrimSpace(file.Name)
	if name == "" {
		name = displayBase(file.Path)
	}
	if name == "" {
		return icons.Record{}, apperrors.New(apperrors.KindValidation,
			"Cannot import a desktop file without a name.", nil)
	}
	return icons.Record{
		ID:          s.newID(),
		Name:        name,
		ProgramLink: file.Path,
	}, nil
}

func (s *Service) nextFreeSlot(existing []icons.Record) (row, col int) {
	occupied := make(map[[2]int]bool, len(existing))
	for _, e := range existing {
		occupied[[2]int{e.Row, e.Col}] = true
	}
	for r := 0; ; r++ {
		for c := 0; c < s.cols; c++ {
			if !occupied[[2]int{r, c}] {
				return r, c
			}
		}
	}
}

func displayBase(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSpace(base)
}
