package domain

import (
	"context"
	"time"
)

// Clock provides wall-clock time. Sleep goes through the clock as well
// so a fake clock can drive the control loop deterministically.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Cue names a sound the application can play.
type Cue int

const (
	CueAlarm Cue = iota
)

// String returns a human-readable cue name.
func (c Cue) String() string {
	switch c {
	case CueAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// CueService plays sounds. Play is fire-and-forget; ActiveVoices reports
// how many sounds are still audible and is polled until it reaches zero.
type CueService interface {
	Play(cue Cue) error
	ActiveVoices() int
}

// KeySource delivers keyboard events. ReadKey blocks until a key arrives,
// the context is cancelled, or the source is closed (ErrInputClosed).
type KeySource interface {
	ReadKey(ctx context.Context) (Key, error)
}

// Renderer draws a frame. Failures are not fatal to the caller.
type Renderer interface {
	Render(frame Frame) error
}
