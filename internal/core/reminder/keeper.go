package reminder

import (
	"sync"
	"time"

	"sitandwalk/internal/core/model"
)

// Config contains runtime options for Keeper.
type Config struct {
	TickInterval time.Duration
	Now          func() time.Time
}

// Keeper owns a State, drives it from a ticker and fans out events.
// All State access goes through the Keeper mutex.
type Keeper struct {
	mu      sync.Mutex
	options Config
	state   *State
	events  []*subscriber
	stopCh  chan struct{}
	running bool
	stopped bool
}

// subscriber holds notify events its channel had no room for.
type subscriber struct {
	ch      chan Event
	pending []Event
}

// New creates a Keeper sitting from the current clock time.
func New(config model.ReminderConfig, options Config) *Keeper {
	config = config.Normalized()
	if options.TickInterval <= 0 {
		options.TickInterval = config.TickInterval
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Keeper{
		options: options,
		state:   NewState(options.Now(), config.ThresholdMinutes),
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, &subscriber{ch: ch})
	keeper.mu.Unlock()
	return ch
}

// Start publishes the initial state and launches the ticking loop.
func (keeper *Keeper) Start() {
	keeper.mu.Lock()
	if keeper.running || keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	now := keeper.options.Now()
	keeper.emitLocked(keeper.eventLocked(EventModeChange, now))
	keeper.emitLocked(keeper.eventLocked(EventThresholdChange, now))
	keeper.tickLocked(now)
	keeper.mu.Unlock()

	go keeper.run()
}

// Stop terminates the ticking loop and closes observers.
func (keeper *Keeper) Stop() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.stopped = true
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, sub := range events {
		close(sub.ch)
	}
}

// Toggle switches mode and immediately publishes the reset label.
func (keeper *Keeper) Toggle() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	now := keeper.options.Now()
	keeper.state.Toggle(now)
	event := keeper.eventLocked(EventModeChange, now)
	keeper.emitLocked(event)
	keeper.tickLocked(now)
	return event
}

// SetThreshold updates the sitting threshold from raw user input.
// Invalid input returns a *ParseError and leaves the threshold unchanged.
func (keeper *Keeper) SetThreshold(raw string) (int, bool, error) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	effective, clamped, err := keeper.state.SetThreshold(raw)
	if err != nil {
		return effective, false, err
	}
	keeper.emitLocked(keeper.eventLocked(EventThresholdChange, keeper.options.Now()))
	return effective, clamped, nil
}

// Snapshot describes the current state without advancing the notification latch.
func (keeper *Keeper) Snapshot() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.eventLocked(EventTick, keeper.options.Now())
}

func (keeper *Keeper) run() {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-keeper.stopCh:
			return
		case <-ticker.C:
			keeper.tick(keeper.options.Now())
		}
	}
}

func (keeper *Keeper) tick(now time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.stopped {
		return
	}
	keeper.tickLocked(now)
}

func (keeper *Keeper) tickLocked(now time.Time) {
	reading := keeper.state.Tick(now)
	mode := keeper.state.Mode()
	threshold := keeper.state.ThresholdMinutes()

	keeper.emitLocked(Event{
		Type:      EventTick,
		Mode:      mode,
		Minutes:   reading.Minutes,
		Seconds:   reading.Seconds,
		Threshold: threshold,
		Label:     Label(Prefix(mode), reading.Minutes, reading.Seconds),
		At:        now,
	})
	if reading.ShouldNotify {
		keeper.emitLocked(Event{
			Type:      EventNotify,
			Mode:      mode,
			Minutes:   reading.Minutes,
			Seconds:   reading.Seconds,
			Threshold: threshold,
			Message:   NotificationText(threshold),
			At:        now,
		})
	}
}

func (keeper *Keeper) eventLocked(eventType EventType, now time.Time) Event {
	minutes, seconds := elapsed(keeper.state.StartTime(), now)
	mode := keeper.state.Mode()
	threshold := keeper.state.ThresholdMinutes()

	event := Event{
		Type:      eventType,
		Mode:      mode,
		Minutes:   minutes,
		Seconds:   seconds,
		Threshold: threshold,
		Label:     Label(Prefix(mode), minutes, seconds),
		At:        now,
	}
	if eventType == EventThresholdChange {
		event.Message = HelpText(threshold)
	}
	return event
}

func (keeper *Keeper) emitLocked(event Event) {
	for _, sub := range keeper.events {
		sub.flush()
		if len(sub.pending) == 0 && sub.trySend(event) {
			continue
		}
		if event.Type == EventNotify {
			sub.pending = append(sub.pending, event)
		}
	}
}

func (sub *subscriber) flush() {
	for len(sub.pending) > 0 {
		if !sub.trySend(sub.pending[0]) {
			return
		}
		sub.pending = sub.pending[1:]
	}
}

func (sub *subscriber) trySend(event Event) bool {
	select {
	case sub.ch <- event:
		return true
	default:
		return false
	}
}
