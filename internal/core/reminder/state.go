package reminder

import (
	"fmt"
	"strconv"
	"time"
)

// Mode represents what the user is currently doing.
type Mode string

const (
	ModeSitting Mode = "sitting"
	ModeWalking Mode = "walking"
)

const millisPerMinute = int64(time.Minute / time.Millisecond)

// ParseError reports threshold input that is not a valid integer.
type ParseError struct {
	Input string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse threshold %q: %v", err.Input, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Reading is the result of a single tick.
type Reading struct {
	Minutes      int64
	Seconds      int64
	ShouldNotify bool
}

// State tracks the current mode and notification latch.
// It is not safe for concurrent use; Keeper serializes access to it.
type State struct {
	mode             Mode
	startTime        time.Time
	thresholdMinutes int
	notified         bool
}

// NewState returns a State that starts sitting at now.
func NewState(now time.Time, thresholdMinutes int) *State {
	return &State{
		mode:             ModeSitting,
		startTime:        now,
		thresholdMinutes: clampThreshold(thresholdMinutes),
	}
}

// Mode returns the active mode.
func (state *State) Mode() Mode {
	return state.mode
}

// StartTime returns when the active mode began.
func (state *State) StartTime() time.Time {
	return state.startTime
}

// ThresholdMinutes returns the sitting minutes before a notification.
func (state *State) ThresholdMinutes() int {
	return state.thresholdMinutes
}

// Toggle switches between sitting and walking and restarts the clock.
func (state *State) Toggle(now time.Time) (Mode, string) {
	if state.mode == ModeWalking {
		state.mode = ModeSitting
	} else {
		state.mode = ModeWalking
	}
	state.startTime = now
	state.notified = state.mode == ModeWalking
	return state.mode, Prefix(state.mode)
}

// SetThreshold parses raw as a whole number of minutes.
// Values below one are raised to one and reported as clamped.
func (state *State) SetThreshold(raw string) (int, bool, error) {
	parsed, err := strconv.ParseInt(raw, 10, 0)
	if err != nil {
		return state.thresholdMinutes, false, &ParseError{Input: raw, Err: err}
	}

	clamped := parsed < 1
	if clamped {
		parsed = 1
	}
	state.thresholdMinutes = int(parsed)
	state.notified = false
	return state.thresholdMinutes, clamped, nil
}

// Tick computes the elapsed time at now and latches the notification
// the first time a sitting period reaches the threshold.
func (state *State) Tick(now time.Time) Reading {
	minutes, seconds := elapsed(state.startTime, now)
	reading := Reading{Minutes: minutes, Seconds: seconds}

	if state.mode == ModeSitting && !state.notified && minutes >= int64(state.thresholdMinutes) {
		state.notified = true
		reading.ShouldNotify = true
	}
	return reading
}

func elapsed(start, now time.Time) (int64, int64) {
	runningMs := now.Sub(start).Milliseconds()
	if runningMs < 0 {
		runningMs = -runningMs
	}
	minutes := runningMs / millisPerMinute
	seconds := runningMs % millisPerMinute / 1000
	return minutes, seconds
}

func clampThreshold(minutes int) int {
	if minutes < 1 {
		return 1
	}
	return minutes
}
