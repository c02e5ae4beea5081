package main

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/arkadas/deskgrid/internal/version"
)

const githubURL = "https://github.com/arkadas/deskgrid"

func buildAboutTab() fyne.CanvasObject {
	aboutSection := container.NewVBox(
		widget.NewLabelWithStyle("About", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("App", widget.NewLabel("deskgrid")),
			widget.NewFormItem("Version", widget.NewLabel(version.Version)),
			widget.NewFormItem("Commit", widget.NewLabel(version.Commit)),
			widget.NewFormItem("Build", widget.NewLabel(version.BuildDate)),
			widget.NewFormItem("Copyright", widget.NewLabel("(c) 2026 arkadas")),
			widget.NewFormItem("Links", buildLinksRow()),
		),
	)

	return container.NewPadded(container.NewVScroll(aboutSection))
}

func buildLinksRow() fyne.CanvasObject {
	githubLink := newHyperlink("GitHub", githubURL)
	return container.NewHBox(githubLink)
}

func newHyperlink(label, raw string) *widget.Hyperlink {
	u, _ := url.Parse(raw)
	return widget.NewHyperlink(label, u)
}
