package ui

import "fyne.io/fyne/v2"

// Launcher window dimensions
const (
	LauncherWidth  = 420
	LauncherHeight = 340
)

// Panel window dimensions
const (
	PanelWidth  = 460
	PanelHeight = 520
)

// StatusView dimensions
const (
	StatusViewMinWidth  = 380
	StatusViewMinHeight = 140
)

// NewLauncherSize returns the default launcher window size
func NewLauncherSize() fyne.Size {
	return fyne.NewSize(LauncherWidth, LauncherHeight)
}

// NewPanelSize returns the default panel window size
func NewPanelSize() fyne.Size {
	return fyne.NewSize(PanelWidth, PanelHeight)
}

// NewStatusViewMinSize returns the minimum size for the status view
func NewStatusViewMinSize() fyne.Size {
	return fyne.NewSize(StatusViewMinWidth, StatusViewMinHeight)
}
