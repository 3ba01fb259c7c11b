package reminder

import "fmt"

const (
	Title              = "Sit And Walk"
	ExitText           = "Exit"
	UpdateText         = "Update Interval"
	sittingPrefix      = "Sitting for: "
	walkingPrefix      = "Walking for: "
	goingForWalkText   = "I am going for a walk"
	justSatDownText    = "I just sat down"
	helpMessageFormat  = "We'll show a notification at %d minute%s of sitting."
	notificationFormat = "%d minute%s up. Time to take a walk!"
)

// Prefix returns the elapsed label prefix for mode.
func Prefix(mode Mode) string {
	if mode == ModeWalking {
		return walkingPrefix
	}
	return sittingPrefix
}

// ToggleButtonText names the action that leaves mode.
func ToggleButtonText(mode Mode) string {
	if mode == ModeWalking {
		return justSatDownText
	}
	return goingForWalkText
}

// Label renders the elapsed time without padding, e.g. "Sitting for: 31:0".
func Label(prefix string, minutes, seconds int64) string {
	return fmt.Sprintf("%s%d:%d", prefix, minutes, seconds)
}

// HelpText describes when the notification will fire.
func HelpText(thresholdMinutes int) string {
	return fmt.Sprintf(helpMessageFormat, thresholdMinutes, plural(thresholdMinutes))
}

// NotificationText is the body of the sitting notification.
func NotificationText(thresholdMinutes int) string {
	return fmt.Sprintf(notificationFormat, thresholdMinutes, plural(thresholdMinutes))
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
