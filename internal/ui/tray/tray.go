package tray

import (
	"log"

	"sitandwalk/internal/core/reminder"

	"fyne.io/fyne/v2"
	"fyne.io/systray"
)

// App is the subset of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow   func()
	OnToggle func()
	OnExit   func()
}

// Icons holds the tray artwork for each mode.
type Icons struct {
	Sitting fyne.Resource
	Walking fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	mode       reminder.Mode
}

var setTooltip = systray.SetTooltip

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		mode:      reminder.ModeSitting,
	}

	manager.statusItem = fyne.NewMenuItem("Starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(reminder.ToggleButtonText(manager.mode), func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// SetStatus updates the elapsed time line.
func (manager *Manager) SetStatus(status string) {
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetMode switches icon and toggle caption.
func (manager *Manager) SetMode(mode reminder.Mode) {
	if manager.mode == mode {
		return
	}
	manager.mode = mode
	manager.toggleItem.Label = reminder.ToggleButtonText(mode)
	manager.refreshIcon()
	manager.refreshMenu()
}

// SetTooltip sets the hover text of the tray icon.
func (manager *Manager) SetTooltip(tooltip string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("tray tooltip: %v", recovered)
		}
	}()
	setTooltip(tooltip)
}

func (manager *Manager) refreshIcon() {
	icon := manager.icons.Sitting
	if manager.mode == reminder.ModeWalking {
		icon = manager.icons.Walking
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	show := fyne.NewMenuItem("Show", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	exit := fyne.NewMenuItem(reminder.ExitText, func() {
		if manager.callbacks.OnExit != nil {
			manager.callbacks.OnExit()
		}
	})
	exit.IsQuit = true

	manager.app.SetSystemTrayMenu(fyne.NewMenu(reminder.Title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		show,
		manager.toggleItem,
		fyne.NewMenuItemSeparator(),
		exit,
	))
}
