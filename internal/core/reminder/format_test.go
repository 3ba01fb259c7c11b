package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpTextPluralization(t *testing.T) {
	assert.Equal(t, "We'll show a notification at 1 minute of sitting.", HelpText(1))
	assert.Equal(t, "We'll show a notification at 2 minutes of sitting.", HelpText(2))
	assert.Equal(t, "We'll show a notification at 30 minutes of sitting.", HelpText(30))
}

func TestNotificationTextPluralization(t *testing.T) {
	assert.Equal(t, "1 minute up. Time to take a walk!", NotificationText(1))
	assert.Equal(t, "45 minutes up. Time to take a walk!", NotificationText(45))
}

func TestLabelHasNoPadding(t *testing.T) {
	assert.Equal(t, "Sitting for: 0:0", Label(Prefix(ModeSitting), 0, 0))
	assert.Equal(t, "Walking for: 3:7", Label(Prefix(ModeWalking), 3, 7))
}

func TestToggleButtonText(t *testing.T) {
	assert.Equal(t, "I am going for a walk", ToggleButtonText(ModeSitting))
	assert.Equal(t, "I just sat down", ToggleButtonText(ModeWalking))
}
