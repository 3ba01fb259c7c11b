package reminder

import "time"

// EventType defines the type of Keeper event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventModeChange      EventType = "mode_change"
	EventThresholdChange EventType = "threshold_change"
	EventNotify          EventType = "notify"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type      EventType
	Mode      Mode
	Minutes   int64
	Seconds   int64
	Threshold int
	Label     string
	Message   string
	At        time.Time
}
