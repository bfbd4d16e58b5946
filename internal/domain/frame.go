package domain

import "time"

// Screen selects which layout the renderer draws.
type Screen int

const (
	ScreenIdle Screen = iota
	ScreenCountdown
)

// Frame is everything the renderer needs for one draw. Progress is not
// clamped; renderers treat anything >= 1.0 as complete.
type Frame struct {
	Screen          Screen
	Mode            Mode
	DurationText    string
	ElapsedText     string
	WaitingForStart bool
	Progress        float64
	Remaining       time.Duration
}
