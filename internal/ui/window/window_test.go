package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitandwalk/internal/core/reminder"

	"fyne.io/fyne/v2/test"
)

func TestNewWindowInitialText(t *testing.T) {
	view := New(test.NewTempApp(t), 30, Callbacks{})

	assert.Equal(t, reminder.Title, view.Fyne().Title())
	assert.Equal(t, "Sitting for: 0:0", view.elapsedLabel.Text)
	assert.Equal(t, "We'll show a notification at 30 minutes of sitting.", view.helpLabel.Text)
	assert.Equal(t, "30", view.thresholdIn.Text)
	assert.Equal(t, "I am going for a walk", view.toggleButton.Text)
	assert.Equal(t, "Update Interval", view.updateButton.Text)
}

func TestWindowSetters(t *testing.T) {
	view := New(test.NewTempApp(t), 30, Callbacks{})

	view.SetElapsed("Walking for: 2:5")
	view.SetHelp(reminder.HelpText(1))
	view.SetMode(reminder.ModeWalking)
	view.SetThreshold(1)

	assert.Equal(t, "Walking for: 2:5", view.elapsedLabel.Text)
	assert.Equal(t, "We'll show a notification at 1 minute of sitting.", view.helpLabel.Text)
	assert.Equal(t, "I just sat down", view.toggleButton.Text)
	assert.Equal(t, "1", view.thresholdIn.Text)
}

func TestWindowButtons(t *testing.T) {
	var toggled int
	var submitted []string
	view := New(test.NewTempApp(t), 30, Callbacks{
		OnToggle:          func() { toggled++ },
		OnUpdateThreshold: func(raw string) { submitted = append(submitted, raw) },
	})

	test.Tap(view.toggleButton)
	view.SetThreshold(12)
	test.Tap(view.updateButton)

	assert.Equal(t, 1, toggled)
	assert.Equal(t, []string{"12"}, submitted)
}

func TestWindowButtonsWithoutCallbacks(t *testing.T) {
	view := New(test.NewTempApp(t), 30, Callbacks{})

	assert.NotPanics(t, func() {
		test.Tap(view.toggleButton)
		test.Tap(view.updateButton)
	})
}

func TestNumericEntryDropsNonDigits(t *testing.T) {
	test.NewTempApp(t)
	entry := newNumericEntry()

	test.Type(entry, "4a5-b.")
	assert.Equal(t, "45", entry.Text)
}

func TestAllDigits(t *testing.T) {
	assert.True(t, allDigits("0123456789"))
	assert.True(t, allDigits(""))
	assert.False(t, allDigits("12a"))
	assert.False(t, allDigits("-1"))
	assert.False(t, allDigits("١٢"))
}
