package tray

import "fyne.io/fyne/v2"

// Notifier shows desktop notifications when the platform supports them.
type Notifier interface {
	Available() bool
	Notify(message string)
}

// NewNotifier returns a fyne backed notifier when a tray is available
// and a no-op notifier otherwise.
func NewNotifier(app fyne.App, title string, trayAvailable bool) Notifier {
	if app == nil || !trayAvailable {
		return unavailableNotifier{}
	}
	return &availableNotifier{app: app, title: title}
}

type availableNotifier struct {
	app   fyne.App
	title string
}

func (notifier *availableNotifier) Available() bool {
	return true
}

func (notifier *availableNotifier) Notify(message string) {
	notifier.app.SendNotification(fyne.NewNotification(notifier.title, message))
}

type unavailableNotifier struct{}

func (unavailableNotifier) Available() bool {
	return false
}

func (unavailableNotifier) Notify(string) {}
