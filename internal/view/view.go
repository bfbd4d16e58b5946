// Package view projects the application state into render-ready frames.
package view

import (
	"strconv"
	"time"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/timer"
)

// Idle returns the frame shown while no countdown is running.
func Idle(st *domain.AppState) domain.Frame {
	return domain.Frame{
		Screen:          domain.ScreenIdle,
		Mode:            st.Mode,
		DurationText:    string(st.Config.Text),
		WaitingForStart: !st.Timer.Running,
		Remaining:       st.Config.Committed,
	}
}

// Countdown returns the frame for the countdown screen at now. It is also
// used for the final frame after the alarm, when the timer has already
// stopped.
func Countdown(st *domain.AppState, now time.Time) domain.Frame {
	elapsed := timer.Elapsed(st.Timer, now)
	return domain.Frame{
		Screen:          domain.ScreenCountdown,
		Mode:            st.Mode,
		DurationText:    string(st.Config.Text),
		ElapsedText:     strconv.FormatInt(int64(elapsed/time.Second), 10),
		WaitingForStart: !st.Timer.Running,
		Progress:        timer.Progress(st.Timer, now),
		Remaining:       timer.Remaining(st.Timer, now),
	}
}
