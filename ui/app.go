package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"slider-panel/internal/config"
	"slider-panel/internal/host"
)

// BuildMainWindow creates the launcher window: the stand-in for the host
// script component, with the boolean show/hide control for the panel and
// the informational status channel.
func BuildMainWindow(a fyne.App, doc host.Document, cfg *config.Config, logger *logrus.Logger) fyne.Window {
	win := a.NewWindow(cfg.Title() + " — Launcher")
	win.Resize(NewLauncherSize())

	status := NewStatusView()
	session := NewSession(a, doc, cfg, logger, status)

	showCheck := widget.NewCheck("Show panel", session.SetVisible)
	session.OnClosed = func() {
		// Closing the panel window directly must reset the toggle, or
		// the next tick would be a no-op. SetChecked(false) re-enters
		// SetVisible, where Close on a closed session does nothing.
		showCheck.SetChecked(false)
	}

	header := widget.NewLabel("Slider Panel")
	header.TextStyle = fyne.TextStyle{Bold: true}

	clearBtn := widget.NewButton("Clear log", status.Clear)

	content := container.NewBorder(
		container.NewVBox(header, showCheck, widget.NewSeparator()),
		clearBtn,
		nil, nil,
		status.Container(),
	)
	win.SetContent(content)

	win.SetCloseIntercept(func() {
		session.Close()
		win.Close()
	})

	return win
}
