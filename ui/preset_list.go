package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"slider-panel/internal/preset"
)

// PresetList displays the preset files saved in the default preset
// directory; tapping an entry loads it into the panel.
type PresetList struct {
	dir       string
	files     []preset.FileInfo
	list      *widget.List
	container *fyne.Container

	onSelect func(path string)
}

// NewPresetList creates a preset browser over dir. onSelect is invoked with
// the path of a tapped preset file.
func NewPresetList(dir string, onSelect func(path string)) *PresetList {
	pl := &PresetList{
		dir:      dir,
		files:    []preset.FileInfo{},
		onSelect: onSelect,
	}

	pl.list = widget.NewList(
		func() int {
			return len(pl.files)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(pl.files) {
				return
			}
			label := obj.(*widget.Label)
			label.SetText(pl.formatItem(pl.files[id]))
		},
	)

	pl.list.OnSelected = func(id widget.ListItemID) {
		if id >= len(pl.files) {
			return
		}
		path := pl.files[id].Path

		// Deselect immediately to allow re-selection
		pl.list.UnselectAll()

		if pl.onSelect != nil {
			pl.onSelect(path)
		}
	}

	header := widget.NewLabel("Saved Presets")
	header.TextStyle = fyne.TextStyle{Bold: true}

	pl.container = container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		pl.list,
	)

	// Initial scan
	pl.Refresh()

	return pl
}

// Container returns the container widget.
func (pl *PresetList) Container() *fyne.Container {
	return pl.container
}

// Refresh rescans the preset directory and updates the list.
func (pl *PresetList) Refresh() {
	files, err := preset.List(pl.dir)
	if err != nil {
		return // unreadable directory, keep the last good listing
	}
	pl.files = files
	pl.list.Refresh()
}

// formatItem formats a preset entry for display.
func (pl *PresetList) formatItem(fi preset.FileInfo) string {
	now := time.Now()
	var timeStr string
	if fi.Modified.Year() == now.Year() && fi.Modified.YearDay() == now.YearDay() {
		timeStr = fi.Modified.Format("15:04:05")
	} else {
		timeStr = fi.Modified.Format("2006-01-02")
	}
	return fmt.Sprintf("%s  (%s)", fi.Name, timeStr)
}
