package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultReminderConfig(t *testing.T) {
	config := DefaultReminderConfig()
	assert.Equal(t, 30, config.ThresholdMinutes)
	assert.Equal(t, time.Second, config.TickInterval)
}

func TestNormalized(t *testing.T) {
	assert.Equal(t, DefaultReminderConfig(), ReminderConfig{ThresholdMinutes: 30}.Normalized())
	assert.Equal(t, ReminderConfig{ThresholdMinutes: 1, TickInterval: time.Second}, ReminderConfig{ThresholdMinutes: -3}.Normalized())
	assert.Equal(t, ReminderConfig{ThresholdMinutes: 5, TickInterval: 250 * time.Millisecond},
		ReminderConfig{ThresholdMinutes: 5, TickInterval: 250 * time.Millisecond}.Normalized())
}
