package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusView is the pass-through informational channel: every action
// reports its outcome here as a scrolling line of text, the way the host
// script component would feed its text output.
type StatusView struct {
	text      *widget.Entry
	scrollBox *container.Scroll
}

// NewStatusView creates a new scrollable status view.
func NewStatusView() *StatusView {
	sv := &StatusView{}

	sv.text = widget.NewMultiLineEntry()
	sv.text.Wrapping = fyne.TextWrapWord
	sv.text.Disable() // read-only

	sv.scrollBox = container.NewVScroll(sv.text)
	sv.scrollBox.SetMinSize(NewStatusViewMinSize())

	return sv
}

// Container returns the status view's container.
func (sv *StatusView) Container() *container.Scroll {
	return sv.scrollBox
}

// AppendLine adds a line to the status view, safe to call from any goroutine.
func (sv *StatusView) AppendLine(line string) {
	fyne.Do(func() {
		current := sv.text.Text
		if current != "" {
			current += "\n"
		}
		sv.text.SetText(current + line)
		sv.scrollBox.ScrollToBottom()
	})
}

// Clear empties the status view, safe to call from any goroutine.
func (sv *StatusView) Clear() {
	fyne.Do(func() {
		sv.text.SetText("")
	})
}
