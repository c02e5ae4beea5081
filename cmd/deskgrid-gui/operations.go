package main

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2/dialog"

	"github.com/arkadas/deskgrid/internal/events"
	"github.com/arkadas/deskgrid/internal/importer"
	"github.com/arkadas/deskgrid/internal/logger"
	"github.com/arkadas/deskgrid/internal/reconcile"
)

// startCompare reconciles the source profile against the active one off the
// UI thread and renders the result when done.
func (a *deskApp) startCompare(sourceName string) {
	targetName := a.config.ActiveProfile
	if targetName == "" || sourceName == "" || targetName == sourceName {
		a.safeDo("ops.compare.invalid", func() {
			dialog.ShowInformation("Compare", "Pick a source profile different from the active one.", a.window)
		})
		return
	}

	a.setBusy(true)
	a.safeGo("ops.compare", func() {
		target, err := a.store.Load(targetName)
		if err != nil {
			a.showOperationError("Compare failed", err)
			return
		}
		source, err := a.store.Load(sourceName)
		if err != nil {
			a.showOperationError("Compare failed", err)
			return
		}

		result := reconcile.Profiles(target, source)
		logger.Info("Compared profiles",
			"target", targetName,
			"source", sourceName,
			"toImport", len(result.FilesToImport),
			"modified", len(result.Modified))

		a.safeDo("ops.compare.render", func() {
			a.setBusy(false)
			a.renderCompareResult(sourceName, result)
		})
	})
}

// startScan classifies the live desktop against the active profile.
func (a *deskApp) startScan() {
	targetName := a.config.ActiveProfile
	if targetName == "" {
		a.safeDo("ops.scan.no_profile", func() {
			dialog.ShowInformation("Scan", "Pick an active profile first.", a.window)
		})
		return
	}

	a.setBusy(true)
	a.safeGo("ops.scan", func() {
		target, err := a.store.Load(targetName)
		if err != nil {
			a.showOperationError("Scan failed", err)
			return
		}
		files, err := a.scanner.List()
		if err != nil {
			a.showOperationError("Scan failed", err)
			return
		}

		result := reconcile.DesktopFiles(target, files)
		a.safeDo("ops.scan.render", func() {
			a.setBusy(false)
			a.renderScanResult(result)
		})
	})
}

// startImport runs the batch sequentially with live progress. Cancelling
// keeps everything imported so far.
func (a *deskApp) startImport(batch importer.Batch) {
	if len(batch.Records)+len(batch.Files) == 0 {
		a.safeDo("ops.import.empty", func() {
			dialog.ShowInformation("Import", "Nothing selected to import.", a.window)
		})
		return
	}

	a.setBusy(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancelID := a.setActiveCancel(cancel)

	svc := importer.NewService(a.store, a.config.GridCols)
	svc.OnProgress = func(done, total int) {
		a.safeDo("ops.import.progress", func() {
			a.setProgress(float64(done) / float64(total))
		})
	}

	a.safeGo("ops.import", func() {
		defer a.clearActiveCancel(cancelID)
		report, err := svc.ImportAll(ctx, batch)
		if err != nil && !errors.Is(err, context.Canceled) {
			a.showOperationError("Import failed", err)
			return
		}
		if len(report.Imported) > 0 {
			a.bus.Publish(events.IconsImported{Profile: batch.Profile, Count: len(report.Imported)})
		}

		canceled := errors.Is(err, context.Canceled)
		a.safeDo("ops.import.done", func() {
			a.setBusy(false)
			a.refreshGrid()
			dialog.ShowInformation("Import", importSummary(report, canceled), a.window)
		})
	})
}

func (a *deskApp) showOperationError(title string, err error) {
	logger.Error(title, "error", err)
	a.safeDo("ops.error", func() {
		a.setBusy(false)
		dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
	})
}

// importSummary renders a finished batch for the result dialog.
func importSummary(report importer.Report, canceled bool) string {
	s := fmt.Sprintf("Imported %d icon(s).", len(report.Imported))
	if len(report.Failures) > 0 {
		s += fmt.Sprintf("\n%d item(s) failed:", len(report.Failures))
		for _, f := range report.Failures {
			s += fmt.Sprintf("\n  %s: %v", f.Name, f.Err)
		}
	}
	if canceled {
		s += "\nThe batch was cancelled before finishing."
	}
	return s
}

// compareSummary is the one-line header above the compare result lists.
func compareSummary(sourceName string, result reconcile.Result) string {
	return fmt.Sprintf("%s: %d to import, %d already imported, %d modified",
		sourceName, len(result.FilesToImport), len(result.AlreadyImported), len(result.Modified))
}

// scanSummary is the one-line header above the desktop scan lists.
func scanSummary(result reconcile.FileResult) string {
	return fmt.Sprintf("%d file(s): %d to import, %d already imported, %d partial matches",
		result.Total(), len(result.FilesToImport), len(result.AlreadyImported),
		len(result.NameOnlyMatches)+len(result.PathOnlyMatches))
}
