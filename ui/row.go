package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"slider-panel/internal/host"
	"slider-panel/internal/mirror"
)

// Row mirrors one host slider: a name label, a scaled-integer slider widget
// and a readout showing the real value at the host's precision. Rows exist
// only for tracked parameters whose slider was found at build time.
type Row struct {
	name    string
	scale   mirror.Scale
	slider  *widget.Slider
	readout *widget.Label

	container *fyne.Container
}

// newRow builds the widgets for a found host slider. The slider widget
// operates in integer steps (Step is pinned to 1) bounded by the host's
// current min/max; onChanged receives user edits as step counts.
func newRow(name string, s host.Slider, onChanged func(r *Row, steps int)) *Row {
	r := &Row{name: name}
	r.scale = mirror.ScaleFor(s)

	r.slider = widget.NewSlider(
		float64(r.scale.Steps(s.Minimum())),
		float64(r.scale.Steps(s.Maximum())),
	)
	r.slider.Step = 1
	r.slider.SetValue(float64(r.scale.Steps(s.Value())))

	r.readout = widget.NewLabel(r.scale.Format(s.Value()))
	r.readout.TextStyle = fyne.TextStyle{Monospace: true}

	label := widget.NewLabel(name)

	// Wired after the initial SetValue so construction never counts as
	// a user edit.
	r.slider.OnChanged = func(raw float64) {
		onChanged(r, int(math.Round(raw)))
	}

	r.container = container.NewBorder(nil, nil, label, r.readout, r.slider)
	return r
}

// Container returns the row's container.
func (r *Row) Container() *fyne.Container {
	return r.container
}

// Name returns the tracked parameter name the row mirrors.
func (r *Row) Name() string {
	return r.name
}

// setFromHost pulls the slider's current bounds, precision and value into
// the widgets. The scale is re-captured here, so a precision change on the
// host side takes effect on the next sync rather than never. Callers must
// hold the panel guard: SetValue fires OnChanged, and only the guard keeps
// that echo from being written back to the host.
func (r *Row) setFromHost(s host.Slider) {
	r.scale = mirror.ScaleFor(s)
	r.slider.Min = float64(r.scale.Steps(s.Minimum()))
	r.slider.Max = float64(r.scale.Steps(s.Maximum()))
	r.slider.SetValue(float64(r.scale.Steps(s.Value())))
	r.slider.Refresh()
	r.readout.SetText(r.scale.Format(s.Value()))
}
