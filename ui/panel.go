package ui

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"slider-panel/internal/config"
	"slider-panel/internal/host"
	"slider-panel/internal/mirror"
	"slider-panel/internal/preset"
)

// Panel is the floating window mirroring the tracked host sliders: one row
// per parameter whose slider was found, plus the Save/Load/Sync actions and
// a browser of saved presets.
type Panel struct {
	doc       host.Document
	cfg       *config.Config
	logger    logrus.FieldLogger
	status    *StatusView
	guard     *mirror.Guard
	presetDir string

	rows    []*Row
	presets *PresetList

	saveBtn *widget.Button
	loadBtn *widget.Button
	syncBtn *widget.Button

	win fyne.Window
}

// NewPanel builds the panel window over the given document. Tracked
// parameters whose slider is absent are skipped silently; the panel shows
// rows for everything that was found, in config order.
func NewPanel(a fyne.App, doc host.Document, cfg *config.Config, logger logrus.FieldLogger, status *StatusView) *Panel {
	p := &Panel{
		doc:       doc,
		cfg:       cfg,
		logger:    logger,
		status:    status,
		guard:     mirror.NewGuard(),
		presetDir: cfg.PresetDir(),
	}

	p.buildRows()

	p.saveBtn = widget.NewButton("Save", p.onSave)
	p.loadBtn = widget.NewButton("Load", p.onLoad)
	p.syncBtn = widget.NewButton("Sync from GH", p.onSync)
	p.presets = NewPresetList(p.presetDir, p.loadPreset)

	rowBox := container.NewVBox()
	for _, r := range p.rows {
		rowBox.Add(r.Container())
	}
	if len(p.rows) == 0 {
		rowBox.Add(widget.NewLabel("No tracked sliders found in the document."))
	}

	actions := container.NewHBox(p.saveBtn, p.loadBtn, p.syncBtn)

	content := container.NewBorder(
		container.NewVBox(rowBox, widget.NewSeparator(), actions, widget.NewSeparator()),
		nil, nil, nil,
		p.presets.Container(),
	)

	p.win = a.NewWindow(cfg.Title())
	p.win.Resize(NewPanelSize())
	p.win.SetContent(content)

	return p
}

// Window returns the panel's window so the session can show and close it.
func (p *Panel) Window() fyne.Window {
	return p.win
}

// Rows returns the number of built rows.
func (p *Panel) Rows() int {
	return len(p.rows)
}

// buildRows creates one row per tracked parameter with a matching host
// slider. Row construction captures each slider's precision; a reopened
// panel therefore picks up precision changes made between sessions.
func (p *Panel) buildRows() {
	for _, name := range p.cfg.Panel.Parameters {
		s, err := host.FindSlider(p.doc, name)
		if err != nil {
			p.logger.WithField("parameter", name).Warn("slider not found, row omitted")
			continue
		}
		p.rows = append(p.rows, newRow(name, s, p.rowChanged))
	}
}

// rowChanged is the widget→host direction: a slider widget moved. When the
// guard is active the event is a programmatic echo from a batch update and
// must not touch the host.
func (p *Panel) rowChanged(r *Row, steps int) {
	if p.guard.Active() {
		return
	}

	v := r.scale.Value(steps)
	r.readout.SetText(r.scale.Format(v))

	if _, err := host.SetValue(p.doc, r.name, v); err != nil {
		p.logger.WithField("parameter", r.name).WithError(err).Warn("write to host failed")
		p.status.AppendLine(fmt.Sprintf("%s: slider disappeared from the document", r.name))
		return
	}
	p.doc.Expire(host.ExpireSoft)
}

// SyncFromHost pulls the current host value of every row into its widgets.
// Read-only on the host side: no value is written and no recompute is
// requested. The whole pass runs under the guard so none of the widget
// updates is mistaken for a user edit.
func (p *Panel) SyncFromHost() int {
	synced := 0
	p.guard.Run(func() {
		for _, r := range p.rows {
			s, err := host.FindSlider(p.doc, r.name)
			if err != nil {
				p.logger.WithField("parameter", r.name).Warn("slider not found, row left unchanged")
				continue
			}
			r.setFromHost(s)
			synced++
		}
	})
	return synced
}

// ApplyPreset pushes every preset entry matching a tracked parameter into
// the host, including parameters without a built row (their slider may have
// appeared in the document after the panel was built). Keys outside the
// tracked list are ignored: presets may be supersets from an older
// parameter list. All updates run under the guard first; then a single
// soft recompute covers the whole batch.
func (p *Panel) ApplyPreset(snap preset.Preset) int {
	applied := 0
	p.guard.Run(func() {
		for _, name := range p.cfg.Panel.Parameters {
			v, ok := snap[name]
			if !ok {
				continue
			}
			if _, err := host.SetValue(p.doc, name, v); err != nil {
				p.logger.WithField("parameter", name).WithError(err).Warn("preset entry skipped")
				continue
			}
			applied++

			r := p.rowFor(name)
			if r == nil {
				continue
			}
			if s, err := host.FindSlider(p.doc, name); err == nil {
				r.setFromHost(s)
			}
		}
	})
	if applied > 0 {
		p.doc.Expire(host.ExpireSoft)
	}
	return applied
}

// rowFor returns the built row mirroring name, or nil when the slider was
// absent at build time.
func (p *Panel) rowFor(name string) *Row {
	for _, r := range p.rows {
		if r.name == name {
			return r
		}
	}
	return nil
}

func (p *Panel) onSave() {
	// The default preset directory must exist before the dialog opens,
	// or the user has nowhere sensible to land.
	if err := os.MkdirAll(p.presetDir, 0755); err != nil {
		p.fail("create preset directory", err)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return // cancelled
		}
		path := writer.URI().Path()
		writer.Close()

		p.savePreset(path)
	}, p.win)
	d.SetFileName("preset" + preset.Ext)
	if lister, err := storage.ListerForURI(storage.NewFileURI(p.presetDir)); err == nil {
		d.SetLocation(lister)
	}
	d.Show()
}

// savePreset captures the tracked values and writes them to the chosen
// path, appending the .json extension when missing. The save dialog has
// already created an empty file at the chosen name, so when the extension
// fix moves the target that stray file is removed.
func (p *Panel) savePreset(chosen string) {
	path := preset.EnsureExt(chosen)
	if path != chosen {
		_ = os.Remove(chosen)
	}

	snap := preset.Capture(p.doc, p.cfg.Panel.Parameters)
	if err := preset.Save(path, snap); err != nil {
		p.fail("save preset", err)
		return
	}

	p.logger.WithFields(logrus.Fields{"path": path, "entries": len(snap)}).Info("preset saved")
	p.status.AppendLine(fmt.Sprintf("Saved %d parameter(s) to %s", len(snap), path))
	p.presets.Refresh()
}

func (p *Panel) onLoad() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		p.loadPreset(path)
	}, p.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{preset.Ext}))
	d.Show()
}

// loadPreset decodes the file in full before applying anything, so a
// corrupt preset can never leave the document half-updated.
func (p *Panel) loadPreset(path string) {
	snap, err := preset.Load(path)
	if err != nil {
		if preset.IsParseError(err) {
			p.fail("load preset", err)
		} else {
			p.fail("read preset", err)
		}
		return
	}

	applied := p.ApplyPreset(snap)
	p.logger.WithFields(logrus.Fields{"path": path, "applied": applied, "entries": len(snap)}).Info("preset loaded")
	p.status.AppendLine(fmt.Sprintf("Loaded %d of %d entries from %s", applied, len(snap), path))
}

func (p *Panel) onSync() {
	synced := p.SyncFromHost()
	p.status.AppendLine(fmt.Sprintf("Synced %d row(s) from the document", synced))
}

// fail reports an action-boundary error to the log, the status line and a
// dialog. Nothing here may propagate: a bad preset file must not take the
// panel down with it.
func (p *Panel) fail(action string, err error) {
	p.logger.WithError(err).Error(action + " failed")
	p.status.AppendLine(fmt.Sprintf("Error: %s: %v", action, err))
	dialog.ShowError(fmt.Errorf("%s: %w", action, err), p.win)
}
