// Package timer implements the countdown arithmetic: starting a timer,
// and deriving elapsed time, progress and completion from it.
//
// Everything here is a pure function of a domain.TimerState and an
// explicit timestamp, so callers decide where "now" comes from.
package timer

import (
	"time"

	"github.com/hammamikhairi/ottotimer/internal/domain"
)

// Start returns a running timer that began at now and lasts d.
func Start(now time.Time, d time.Duration) domain.TimerState {
	if d < 0 {
		d = 0
	}
	return domain.TimerState{
		Running:   true,
		StartedAt: now,
		Target:    d,
	}
}

// Elapsed returns how long the timer has been going at now. A clock that
// steps backwards yields zero rather than a negative duration.
func Elapsed(s domain.TimerState, now time.Time) time.Duration {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Progress returns elapsed/target in seconds. It is not clamped and can
// exceed 1.0 when completion is observed late. A zero target counts as
// already finished.
func Progress(s domain.TimerState, now time.Time) float64 {
	if s.Target <= 0 {
		return 1.0
	}
	return Elapsed(s, now).Seconds() / s.Target.Seconds()
}

// IsComplete reports whether the target duration has been reached.
func IsComplete(s domain.TimerState, now time.Time) bool {
	return Elapsed(s, now) >= s.Target
}

// Remaining returns the time left, floored at zero.
func Remaining(s domain.TimerState, now time.Time) time.Duration {
	left := s.Target - Elapsed(s, now)
	if left < 0 {
		return 0
	}
	return left
}
