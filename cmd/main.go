package main

import (
	"log"

	"sitandwalk/internal/core/reminder"
	"sitandwalk/internal/storage"
	"sitandwalk/internal/ui/presenter"
	"sitandwalk/internal/ui/tray"
	"sitandwalk/internal/ui/window"
	"sitandwalk/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "SitAndWalk"

func main() {
	config, err := storage.LoadConfig(appName)
	if err != nil {
		log.Printf("config: %v", err)
	}

	fyneApp := app.NewWithID("com.sitandwalk.app")
	sittingIcon := resources.MustLogo(resources.SittingLogo)
	walkingIcon := resources.MustLogo(resources.WalkingLogo)
	fyneApp.SetIcon(sittingIcon)

	keeper := reminder.New(config, reminder.Config{TickInterval: config.TickInterval})

	var mainWindow *window.Window
	mainWindow = window.New(fyneApp, config.Normalized().ThresholdMinutes, window.Callbacks{
		OnToggle: func() {
			keeper.Toggle()
		},
		OnUpdateThreshold: func(raw string) {
			effective, clamped, err := keeper.SetThreshold(raw)
			if err != nil {
				log.Printf("threshold: %v", err)
				mainWindow.SetThreshold(effective)
				return
			}
			if clamped {
				mainWindow.SetThreshold(effective)
			}
		},
	})

	quit := func() {
		keeper.Stop()
		fyneApp.Quit()
	}

	desktopApp, trayAvailable := fyneApp.(desktop.App)
	var trayManager *tray.Manager
	var trayView presenter.TrayView
	var ui *presenter.Presenter
	if trayAvailable {
		trayManager = tray.New(desktopApp, tray.Icons{Sitting: sittingIcon, Walking: walkingIcon}, tray.Callbacks{
			OnShow: func() {
				ui.Render(keeper.Snapshot())
				mainWindow.Show()
			},
			OnToggle: func() { keeper.Toggle() },
			OnExit:   quit,
		})
		trayView = trayManager
		desktopApp.SetSystemTrayWindow(mainWindow.Fyne())
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
		mainWindow.SetCloseIntercept(quit)
	}
	ui = presenter.New(mainWindow, trayView, tray.NewNotifier(fyneApp, reminder.Title, trayAvailable))

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				ui.Render(event)
			})
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		if trayManager != nil {
			trayManager.SetTooltip(reminder.Title)
		}
		keeper.Start()
	})
	fyneApp.Lifecycle().SetOnStopped(keeper.Stop)

	mainWindow.Show()
	fyneApp.Run()
}
