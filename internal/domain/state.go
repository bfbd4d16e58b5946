package domain

import (
	"strconv"
	"time"
)

// Mode is the input mode of the application.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

// String returns a human-readable mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// TimerConfig holds the duration the user asked for: the raw text being
// edited and the last value committed from it.
type TimerConfig struct {
	Text      []rune
	Committed time.Duration
}

// TimerState describes the countdown. A fresh one replaces the old one
// on every start; nothing is kept once it is replaced.
type TimerState struct {
	Running   bool
	StartedAt time.Time
	Target    time.Duration
}

// AppState is the whole mutable state of the application. It has a
// single owner, the control loop, which hands it to the input machine.
type AppState struct {
	Mode   Mode
	Config TimerConfig
	Timer  TimerState
}

// NewAppState returns the initial state with defaultSeconds both shown
// in the edit field and committed as the countdown target.
func NewAppState(defaultSeconds uint32) *AppState {
	return &AppState{
		Mode: ModeNormal,
		Config: TimerConfig{
			Text:      []rune(strconv.FormatUint(uint64(defaultSeconds), 10)),
			Committed: time.Duration(defaultSeconds) * time.Second,
		},
	}
}
