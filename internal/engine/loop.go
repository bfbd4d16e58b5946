// Package engine runs the control loop that ties the countdown, the
// input state machine and the alarm together.
//
// The loop is an explicit two-phase machine. In the idle phase it draws
// once and blocks for a key. In the running phase it redraws on a fixed
// tick until the countdown completes, then plays the alarm, waits for
// the audio to drain and accepts exactly one key before going idle.
// Keys pressed during a countdown are only read after it finishes.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/input"
	"github.com/hammamikhairi/ottotimer/internal/logger"
	"github.com/hammamikhairi/ottotimer/internal/timer"
	"github.com/hammamikhairi/ottotimer/internal/view"
)

// Phase is the outer state of the loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// PhaseOf derives the phase from the state.
func PhaseOf(st *domain.AppState) Phase {
	if st.Timer.Running {
		return PhaseRunning
	}
	return PhaseIdle
}

// Option configures the engine.
type Option func(*Engine)

// WithTickInterval sets how often a running countdown is redrawn.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.tickInterval = d
	}
}

// WithVoicePollInterval sets how often the audio backend is polled while
// waiting for the alarm to finish.
func WithVoicePollInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.voicePollInterval = d
	}
}

// WithSettleInterval sets the pause after each dispatched key.
func WithSettleInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.settleInterval = d
	}
}

// Engine is the control loop. It is not safe for concurrent use; the
// goroutine calling Run owns the AppState for the duration of the call.
type Engine struct {
	clock    domain.Clock
	cues     domain.CueService
	keys     domain.KeySource
	renderer domain.Renderer
	input    *input.Machine
	log      *logger.Logger

	tickInterval      time.Duration
	voicePollInterval time.Duration
	settleInterval    time.Duration
}

// New creates an engine with the given collaborators and options.
func New(clock domain.Clock, cues domain.CueService, keys domain.KeySource, renderer domain.Renderer, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		clock:             clock,
		cues:              cues,
		keys:              keys,
		renderer:          renderer,
		input:             input.NewMachine(log),
		log:               log,
		tickInterval:      250 * time.Millisecond,
		voicePollInterval: 100 * time.Millisecond,
		settleInterval:    100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run steps the loop until the user quits, the key source closes or ctx
// is cancelled. Only unexpected input errors are returned.
func (e *Engine) Run(ctx context.Context, st *domain.AppState) error {
	e.log.Info("control loop started (tick=%s, poll=%s, settle=%s)", e.tickInterval, e.voicePollInterval, e.settleInterval)
	defer e.log.Info("control loop stopped")

	for {
		quit, err := e.Step(ctx, st)
		if err != nil {
			if errors.Is(err, domain.ErrInputClosed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				e.log.Debug("engine: stopping: %v", err)
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
	}
}

// Step runs one iteration of the current phase. It returns quit=true
// once the quit key was dispatched.
func (e *Engine) Step(ctx context.Context, st *domain.AppState) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	switch PhaseOf(st) {
	case PhaseRunning:
		now := e.clock.Now()
		e.render(view.Countdown(st, now))

		if !timer.IsComplete(st.Timer, now) {
			e.clock.Sleep(e.tickInterval)
			return false, nil
		}

		e.log.Info("countdown of %s complete", st.Timer.Target)
		e.soundAlarm()
		st.Timer.Running = false
		e.render(view.Countdown(st, now))

	default:
		e.render(view.Idle(st))
	}

	return e.awaitKey(ctx, st)
}

// awaitKey performs the single blocking read and dispatch of an iteration.
func (e *Engine) awaitKey(ctx context.Context, st *domain.AppState) (bool, error) {
	k, err := e.keys.ReadKey(ctx)
	if err != nil {
		return false, err
	}

	switch e.input.Dispatch(st, k) {
	case input.ActionQuit:
		return true, nil
	case input.ActionStart:
		st.Timer = timer.Start(e.clock.Now(), st.Config.Committed)
		e.log.Info("countdown started for %s", st.Timer.Target)
	}

	e.clock.Sleep(e.settleInterval)
	return false, nil
}

// soundAlarm plays the alarm and blocks until the backend reports no
// active voices. There is no timeout: a backend that never drains stalls
// the loop.
func (e *Engine) soundAlarm() {
	if err := e.cues.Play(domain.CueAlarm); err != nil {
		e.log.Error("engine: playing alarm: %v", err)
	}

	polls := 0
	for e.cues.ActiveVoices() > 0 {
		e.clock.Sleep(e.voicePollInterval)
		polls++
	}
	e.log.Debug("engine: alarm drained after %d polls", polls)
}

func (e *Engine) render(f domain.Frame) {
	if err := e.renderer.Render(f); err != nil {
		e.log.Debug("engine: render failed: %v", err)
	}
}
