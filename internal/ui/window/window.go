package window

import (
	"strconv"

	"sitandwalk/internal/core/reminder"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines main window action handlers.
type Callbacks struct {
	OnToggle          func()
	OnUpdateThreshold func(raw string)
}

// Window is the main reminder window.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	elapsedLabel *widget.Label
	helpLabel    *widget.Label
	thresholdIn  *numericEntry
	toggleButton *widget.Button
	updateButton *widget.Button
}

// New creates the main window for the given starting threshold.
func New(app fyne.App, thresholdMinutes int, callbacks Callbacks) *Window {
	window := app.NewWindow(reminder.Title)

	elapsedLabel := widget.NewLabelWithStyle(
		reminder.Label(reminder.Prefix(reminder.ModeSitting), 0, 0),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	helpLabel := widget.NewLabelWithStyle(reminder.HelpText(thresholdMinutes), fyne.TextAlignCenter, fyne.TextStyle{})
	helpLabel.Wrapping = fyne.TextWrapWord

	thresholdIn := newNumericEntry()
	thresholdIn.SetText(strconv.Itoa(thresholdMinutes))

	view := &Window{
		window:       window,
		callbacks:    callbacks,
		elapsedLabel: elapsedLabel,
		helpLabel:    helpLabel,
		thresholdIn:  thresholdIn,
	}

	view.toggleButton = widget.NewButton(reminder.ToggleButtonText(reminder.ModeSitting), view.handleToggle)
	view.updateButton = widget.NewButton(reminder.UpdateText, view.handleUpdate)
	thresholdIn.OnSubmitted = func(string) {
		view.handleUpdate()
	}

	content := container.NewVBox(
		elapsedLabel,
		helpLabel,
		container.NewBorder(nil, nil, nil, view.updateButton, thresholdIn),
		view.toggleButton,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(360, 200))

	return view
}

// Show restores and focuses the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window without closing it.
func (view *Window) Hide() {
	view.window.Hide()
}

// Fyne returns the underlying fyne window.
func (view *Window) Fyne() fyne.Window {
	return view.window
}

// SetCloseIntercept replaces the default close behaviour.
func (view *Window) SetCloseIntercept(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// SetElapsed updates the elapsed time label.
func (view *Window) SetElapsed(label string) {
	view.elapsedLabel.SetText(label)
}

// SetHelp updates the help text label.
func (view *Window) SetHelp(text string) {
	view.helpLabel.SetText(text)
}

// SetMode updates the toggle button caption.
func (view *Window) SetMode(mode reminder.Mode) {
	view.toggleButton.SetText(reminder.ToggleButtonText(mode))
}

// SetThreshold replaces the threshold entry text.
func (view *Window) SetThreshold(minutes int) {
	view.thresholdIn.SetText(strconv.Itoa(minutes))
}

func (view *Window) handleToggle() {
	if view.callbacks.OnToggle != nil {
		view.callbacks.OnToggle()
	}
}

func (view *Window) handleUpdate() {
	if view.callbacks.OnUpdateThreshold != nil {
		view.callbacks.OnUpdateThreshold(view.thresholdIn.Text)
	}
}
