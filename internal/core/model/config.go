package model

import "time"

const (
	DefaultThresholdMinutes = 30
	DefaultTickInterval     = time.Second
)

// ReminderConfig contains runtime settings for the sit/walk reminder.
type ReminderConfig struct {
	ThresholdMinutes int
	TickInterval     time.Duration
}

// DefaultReminderConfig returns the settings used when no config file exists.
func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{
		ThresholdMinutes: DefaultThresholdMinutes,
		TickInterval:     DefaultTickInterval,
	}
}

// Normalized returns a copy with out-of-range values replaced.
func (config ReminderConfig) Normalized() ReminderConfig {
	if config.ThresholdMinutes < 1 {
		config.ThresholdMinutes = 1
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	return config
}
