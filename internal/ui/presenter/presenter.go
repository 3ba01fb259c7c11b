package presenter

import (
	"log"

	"sitandwalk/internal/core/reminder"
	"sitandwalk/internal/ui/tray"
)

// MainView is the part of the main window that renders keeper events.
type MainView interface {
	SetElapsed(label string)
	SetHelp(text string)
	SetMode(mode reminder.Mode)
}

// TrayView is the part of the tray that renders keeper events.
type TrayView interface {
	SetStatus(status string)
	SetMode(mode reminder.Mode)
}

// Presenter turns keeper events into UI updates and notifications.
// Render must be called on the fyne UI thread.
type Presenter struct {
	view     MainView
	tray     TrayView
	notifier tray.Notifier
}

// New creates a presenter. trayView may be nil when no tray is available.
func New(view MainView, trayView TrayView, notifier tray.Notifier) *Presenter {
	return &Presenter{view: view, tray: trayView, notifier: notifier}
}

// Render applies a single event.
func (presenter *Presenter) Render(event reminder.Event) {
	switch event.Type {
	case reminder.EventTick:
		presenter.view.SetElapsed(event.Label)
		if presenter.tray != nil {
			presenter.tray.SetStatus(event.Label)
		}
	case reminder.EventModeChange:
		presenter.view.SetMode(event.Mode)
		if presenter.tray != nil {
			presenter.tray.SetMode(event.Mode)
		}
	case reminder.EventThresholdChange:
		presenter.view.SetHelp(event.Message)
	case reminder.EventNotify:
		if presenter.notifier == nil || !presenter.notifier.Available() {
			log.Printf("notification skipped: %s", event.Message)
			return
		}
		presenter.notifier.Notify(event.Message)
	}
}
