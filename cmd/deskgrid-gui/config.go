package main

import (
	"fyne.io/fyne/v2"

	"github.com/arkadas/deskgrid/internal/logger"
)

type AppConfig struct {
	ActiveProfile string
	DesktopDir    string
	GridRows      int
	GridCols      int
}

const (
	defaultGridRows = 8
	defaultGridCols = 12
	maxGridDim      = 32
)

// clampGridDim keeps a grid dimension inside [1, maxGridDim].
func clampGridDim(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	if v > maxGridDim {
		return maxGridDim
	}
	return v
}

func (a *deskApp) loadConfig() {
	prefs := fyne.CurrentApp().Preferences()

	a.config.ActiveProfile = prefs.String("ActiveProfile")
	a.config.DesktopDir = prefs.String("DesktopDir")

	a.config.GridRows = prefs.IntWithFallback("GridRows", defaultGridRows)
	if clamped := clampGridDim(a.config.GridRows, defaultGridRows); clamped != a.config.GridRows {
		logger.Warn("Grid rows clamped", "requested", a.config.GridRows, "effective", clamped)
		a.config.GridRows = clamped
		prefs.SetInt("GridRows", a.config.GridRows)
	}
	a.config.GridCols = prefs.IntWithFallback("GridCols", defaultGridCols)
	if clamped := clampGridDim(a.config.GridCols, defaultGridCols); clamped != a.config.GridCols {
		logger.Warn("Grid cols clamped", "requested", a.config.GridCols, "effective", clamped)
		a.config.GridCols = clamped
		prefs.SetInt("GridCols", a.config.GridCols)
	}
}

func (a *deskApp) saveConfig() {
	prefs := fyne.CurrentApp().Preferences()
	prefs.SetString("ActiveProfile", a.config.ActiveProfile)
	prefs.SetString("DesktopDir", a.config.DesktopDir)
	prefs.SetInt("GridRows", a.config.GridRows)
	prefs.SetInt("GridCols", a.config.GridCols)
}
