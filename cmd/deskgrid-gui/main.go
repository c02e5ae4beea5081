package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/spf13/afero"

	"github.com/arkadas/deskgrid/internal/desktop"
	"github.com/arkadas/deskgrid/internal/events"
	"github.com/arkadas/deskgrid/internal/icons"
	"github.com/arkadas/deskgrid/internal/importer"
	"github.com/arkadas/deskgrid/internal/logger"
	"github.com/arkadas/deskgrid/internal/profile"
	"github.com/arkadas/deskgrid/internal/reconcile"
)

type deskApp struct {
	window  fyne.Window
	store   *profile.Store
	scanner *desktop.Scanner
	bus     *events.Bus
	config  AppConfig

	// UI components
	profileSelect *widget.Select
	gridBox       *fyne.Container
	statusLabel   *widget.Label
	progressBar   *widget.ProgressBar
	compareBox    *fyne.Container
	scanBox       *fyne.Container

	busy            bool
	cancelMu        sync.Mutex
	activeCancel    context.CancelFunc
	activeCancelID  uint64
	panicNoticeOnce sync.Once
}

func newDeskApp(w fyne.Window) *deskApp {
	a := &deskApp{window: w, bus: &events.Bus{}}
	a.loadConfig()

	fs := afero.NewOsFs()
	profilesDir, err := profile.DefaultDir()
	if err != nil {
		logger.Fatal("Could not locate the profiles directory", "error", err)
	}
	a.store = profile.NewStore(fs, profilesDir)

	desktopDir := a.config.DesktopDir
	if desktopDir == "" {
		desktopDir, err = desktop.DefaultDir()
		if err != nil {
			logger.Fatal("Could not locate the desktop directory", "error", err)
		}
	}
	a.scanner = desktop.NewScanner(fs, desktopDir)

	a.bus.Subscribe(func(e events.Event) {
		switch ev := e.(type) {
		case events.IconsImported:
			logger.Info("Icons imported", "profile", ev.Profile, "count", ev.Count)
		case events.ProfileSaved:
			logger.Debug("Profile saved", "name", ev.Name)
		case events.ProfileDeleted:
			logger.Info("Profile deleted", "name", ev.Name)
		}
	})

	a.setupUI()
	return a
}

func (a *deskApp) setActiveCancel(cancel context.CancelFunc) uint64 {
	a.cancelMu.Lock()
	if a.activeCancel != nil {
		a.activeCancel()
	}
	a.activeCancel = cancel
	a.activeCancelID++
	id := a.activeCancelID
	a.cancelMu.Unlock()
	return id
}

func (a *deskApp) clearActiveCancel(id uint64) {
	a.cancelMu.Lock()
	if a.activeCancelID == id {
		a.activeCancel = nil
	}
	a.cancelMu.Unlock()
}

func (a *deskApp) cancelActive(reason string) {
	a.cancelMu.Lock()
	cancel := a.activeCancel
	a.activeCancel = nil
	a.cancelMu.Unlock()
	if cancel != nil {
		logger.Warn("Cancellation requested", "reason", reason)
		cancel()
	}
}

func (a *deskApp) setBusy(busy bool) {
	a.safeDo("ui.busy", func() {
		a.busy = busy
		if busy {
			a.progressBar.SetValue(0)
			a.progressBar.Show()
			a.statusLabel.SetText("Working...")
		} else {
			a.progressBar.Hide()
			a.statusLabel.SetText("Ready")
		}
	})
}

func (a *deskApp) setProgress(fraction float64) {
	a.progressBar.SetValue(fraction)
}

func (a *deskApp) setupUI() {
	a.statusLabel = widget.NewLabel("Ready")
	a.progressBar = widget.NewProgressBar()
	a.progressBar.Hide()

	a.profileSelect = widget.NewSelect(nil, func(name string) {
		a.config.ActiveProfile = name
		a.saveConfig()
		a.refreshGrid()
	})
	a.refreshProfileList()

	a.gridBox = container.NewVBox()
	a.compareBox = container.NewVBox()
	a.scanBox = container.NewVBox()

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Grid", theme.GridIcon(), a.buildGridTab()),
		container.NewTabItemWithIcon("Profiles", theme.FolderIcon(), a.buildProfilesTab()),
		container.NewTabItemWithIcon("Compare", theme.ViewRefreshIcon(), a.buildCompareTab()),
		container.NewTabItemWithIcon("Desktop", theme.ComputerIcon(), a.buildDesktopTab()),
		container.NewTabItemWithIcon("Settings", theme.SettingsIcon(), a.buildSettingsTab()),
		container.NewTabItemWithIcon("About", theme.InfoIcon(), buildAboutTab()),
	)
	tabs.SetTabLocation(container.TabLocationLeading)

	top := container.NewBorder(nil, nil, widget.NewLabel("Profile:"), nil, a.profileSelect)
	bottom := container.NewVBox(a.progressBar, a.statusLabel)
	a.window.SetContent(container.NewBorder(top, bottom, nil, nil, tabs))
}

func (a *deskApp) refreshProfileList() {
	names, err := a.store.List()
	if err != nil {
		logger.Error("Failed to list profiles", "error", err)
		return
	}
	a.profileSelect.Options = names
	if a.config.ActiveProfile != "" {
		a.profileSelect.SetSelected(a.config.ActiveProfile)
	} else if len(names) > 0 {
		a.profileSelect.SetSelected(names[0])
	}
	a.profileSelect.Refresh()
}

func (a *deskApp) buildGridTab() fyne.CanvasObject {
	a.refreshGrid()
	return container.NewVScroll(a.gridBox)
}

// refreshGrid rebuilds the icon grid of the active profile. Each icon is a
// button that launches its target.
func (a *deskApp) refreshGrid() {
	a.gridBox.Objects = nil
	name := a.config.ActiveProfile
	if name == "" {
		a.gridBox.Add(widget.NewLabel("No profile selected."))
		a.gridBox.Refresh()
		return
	}
	records, err := a.store.Load(name)
	if err != nil {
		a.gridBox.Add(widget.NewLabel(fmt.Sprintf("Could not load profile: %v", err)))
		a.gridBox.Refresh()
		return
	}

	grid := container.NewGridWithColumns(a.config.GridCols)
	for _, rec := range records {
		rec := rec
		btn := widget.NewButton(icons.DisplayName(rec.Name, 16), func() {
			a.launchIcon(rec)
		})
		grid.Add(btn)
	}
	a.gridBox.Add(widget.NewLabel(fmt.Sprintf("%d icon(s)", len(records))))
	a.gridBox.Add(grid)
	a.gridBox.Refresh()
}

func (a *deskApp) launchIcon(rec icons.Record) {
	a.safeGo("ui.launch", func() {
		var err error
		switch {
		case rec.ProgramLink != "":
			err = desktop.LaunchProgram(rec.ProgramLink, rec.Args)
		case rec.WebsiteLink != "":
			err = desktop.OpenURL(rec.WebsiteLink)
		default:
			err = fmt.Errorf("icon %q has no program or website link", rec.Name)
		}
		if err != nil {
			a.showOperationError("Launch failed", err)
		}
	})
}

func (a *deskApp) buildProfilesTab() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("New profile name")

	createBtn := widget.NewButtonWithIcon("Create", theme.ContentAddIcon(), func() {
		name := nameEntry.Text
		if err := profile.ValidateName(name); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.store.Save(name, []icons.Record{}); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.bus.Publish(events.ProfileSaved{Name: name})
		nameEntry.SetText("")
		a.refreshProfileList()
	})

	deleteBtn := widget.NewButtonWithIcon("Delete Active", theme.DeleteIcon(), func() {
		name := a.config.ActiveProfile
		if name == "" {
			return
		}
		dialog.ShowConfirm("Delete Profile",
			fmt.Sprintf("Delete profile %q? This cannot be undone.", name),
			func(ok bool) {
				if !ok {
					return
				}
				if err := a.store.Delete(name); err != nil {
					dialog.ShowError(err, a.window)
					return
				}
				a.bus.Publish(events.ProfileDeleted{Name: name})
				a.config.ActiveProfile = ""
				a.saveConfig()
				a.refreshProfileList()
				a.refreshGrid()
			}, a.window)
	})

	return container.NewVBox(
		widget.NewLabelWithStyle("Profiles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nameEntry,
		container.NewHBox(createBtn, deleteBtn),
	)
}

func (a *deskApp) buildCompareTab() fyne.CanvasObject {
	sourceSelect := widget.NewSelect(nil, nil)
	refreshSources := func() {
		names, err := a.store.List()
		if err == nil {
			sourceSelect.Options = names
			sourceSelect.Refresh()
		}
	}
	refreshSources()

	runBtn := widget.NewButtonWithIcon("Compare", theme.ViewRefreshIcon(), func() {
		refreshSources()
		a.startCompare(sourceSelect.Selected)
	})

	return container.NewBorder(
		container.NewVBox(
			container.NewBorder(nil, nil, widget.NewLabel("Source:"), runBtn, sourceSelect),
			widget.NewSeparator(),
		),
		nil, nil, nil,
		container.NewVScroll(a.compareBox),
	)
}

func (a *deskApp) renderCompareResult(sourceName string, result reconcile.Result) {
	a.compareBox.Objects = nil
	a.compareBox.Add(widget.NewLabelWithStyle(compareSummary(sourceName, result),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	if len(result.FilesToImport) > 0 {
		a.compareBox.Add(widget.NewLabel("To import:"))
		for _, rec := range result.FilesToImport {
			a.compareBox.Add(widget.NewLabel("  + " + icons.DisplayName(rec.Name, 40)))
		}
		toImport := result.FilesToImport
		a.compareBox.Add(widget.NewButtonWithIcon("Import All", theme.DownloadIcon(), func() {
			a.startImport(importer.Batch{
				Profile: a.config.ActiveProfile,
				Records: toImport,
			})
		}))
	}
	if len(result.AlreadyImported) > 0 {
		a.compareBox.Add(widget.NewLabel("Already imported:"))
		for _, pair := range result.AlreadyImported {
			a.compareBox.Add(widget.NewLabel("  = " + icons.DisplayName(pair.Other.Name, 40)))
		}
	}
	if len(result.Modified) > 0 {
		a.compareBox.Add(widget.NewLabel("Modified:"))
		for _, mod := range result.Modified {
			a.compareBox.Add(widget.NewLabel(fmt.Sprintf("  ~ %s (%d field(s) differ)",
				icons.DisplayName(mod.Other.Name, 40), len(mod.Differences))))
		}
	}
	a.compareBox.Refresh()
}

func (a *deskApp) buildDesktopTab() fyne.CanvasObject {
	scanBtn := widget.NewButtonWithIcon("Scan Desktop", theme.SearchIcon(), func() {
		a.startScan()
	})

	return container.NewBorder(
		container.NewVBox(scanBtn, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(a.scanBox),
	)
}

func (a *deskApp) renderScanResult(result reconcile.FileResult) {
	a.scanBox.Objects = nil
	a.scanBox.Add(widget.NewLabelWithStyle(scanSummary(result),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	if len(result.FilesToImport) > 0 {
		a.scanBox.Add(widget.NewLabel("To import:"))
		for _, f := range result.FilesToImport {
			a.scanBox.Add(widget.NewLabel("  + " + f.Path))
		}
		toImport := result.FilesToImport
		a.scanBox.Add(widget.NewButtonWithIcon("Import All", theme.DownloadIcon(), func() {
			a.startImport(importer.Batch{
				Profile: a.config.ActiveProfile,
				Files:   toImport,
			})
		}))
	}
	for _, m := range result.NameOnlyMatches {
		a.scanBox.Add(widget.NewLabel(fmt.Sprintf("  ~ %s matches icon %q by name only", m.Path, m.Icon.Name)))
	}
	for _, m := range result.PathOnlyMatches {
		a.scanBox.Add(widget.NewLabel(fmt.Sprintf("  ? %s sits near icon %q", m.Path, m.Icon.Name)))
	}
	a.scanBox.Refresh()
}

func (a *deskApp) buildSettingsTab() fyne.CanvasObject {
	desktopEntry := widget.NewEntry()
	desktopEntry.SetText(a.scanner.Dir())

	rowsEntry := widget.NewEntry()
	rowsEntry.SetText(strconv.Itoa(a.config.GridRows))
	colsEntry := widget.NewEntry()
	colsEntry.SetText(strconv.Itoa(a.config.GridCols))

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if rows, err := strconv.Atoi(rowsEntry.Text); err == nil {
			a.config.GridRows = clampGridDim(rows, defaultGridRows)
		}
		if cols, err := strconv.Atoi(colsEntry.Text); err == nil {
			a.config.GridCols = clampGridDim(cols, defaultGridCols)
		}
		a.config.DesktopDir = desktopEntry.Text
		if a.config.DesktopDir != "" {
			a.scanner = desktop.NewScanner(afero.NewOsFs(), a.config.DesktopDir)
		}
		a.saveConfig()
		rowsEntry.SetText(strconv.Itoa(a.config.GridRows))
		colsEntry.SetText(strconv.Itoa(a.config.GridCols))
		a.refreshGrid()
	})

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Desktop directory", desktopEntry),
			widget.NewFormItem("Grid rows", rowsEntry),
			widget.NewFormItem("Grid columns", colsEntry),
		),
		saveBtn,
	)
}

// handleDropped imports a file dragged onto the window into the active
// profile.
func (a *deskApp) handleDropped(uri fyne.URI) {
	if a.config.ActiveProfile == "" {
		a.safeDo("ui.drop.no_profile", func() {
			dialog.ShowInformation("Import", "Pick an active profile first.", a.window)
		})
		return
	}
	a.startImport(importer.Batch{
		Profile: a.config.ActiveProfile,
		Files: []icons.DesktopFile{
			{Name: uri.Name(), Path: uri.Path()},
		},
	})
}

func main() {
	logger.Init(logger.LevelInfo, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	myApp := app.NewWithID("com.arkadas.deskgrid")

	w := myApp.NewWindow("deskgrid")
	w.SetMaster()
	w.Resize(fyne.NewSize(900, 600))
	w.CenterOnScreen()

	da := newDeskApp(w)
	w.SetCloseIntercept(func() {
		da.cancelActive("window closed")
		da.saveConfig()
		w.SetCloseIntercept(nil)
		w.Close()
	})

	w.SetOnDropped(func(pos fyne.Position, uris []fyne.URI) {
		for _, uri := range uris {
			da.handleDropped(uri)
		}
	})

	w.ShowAndRun()
}
