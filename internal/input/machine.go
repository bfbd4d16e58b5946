// Package input interprets key events against the application's input
// mode. In normal mode keys are commands; in editing mode they edit the
// duration text until it is committed or abandoned.
package input

import (
	"strconv"
	"time"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

// FallbackDuration is committed whenever the edited text is not a valid
// whole number of seconds.
const FallbackDuration = 60 * time.Second

// Command keys in normal mode.
const (
	EditRune  = 'e'
	StartRune = ' '
)

// Action is what the control loop must do after a key was handled.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionStart
)

// String returns a human-readable action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionStart:
		return "start"
	default:
		return "unknown"
	}
}

// Machine applies the mode transition table to an AppState.
type Machine struct {
	log *logger.Logger
}

// NewMachine creates an input state machine.
func NewMachine(log *logger.Logger) *Machine {
	return &Machine{log: log}
}

// Dispatch handles one key. It mutates st.Mode and st.Config only;
// starting the countdown is left to the caller via ActionStart.
func (m *Machine) Dispatch(st *domain.AppState, k domain.Key) Action {
	switch st.Mode {
	case domain.ModeNormal:
		return m.normal(st, k)
	case domain.ModeEditing:
		m.editing(st, k)
	}
	return ActionNone
}

func (m *Machine) normal(st *domain.AppState, k domain.Key) Action {
	switch {
	case k.Type == domain.KeyQuit:
		m.log.Debug("input: quit requested")
		return ActionQuit
	case k.Type == domain.KeyRune && k.Rune == EditRune:
		st.Mode = domain.ModeEditing
		m.log.Debug("input: normal -> editing (text=%q)", string(st.Config.Text))
	case k.Type == domain.KeyRune && k.Rune == StartRune:
		m.log.Debug("input: start with %s", st.Config.Committed)
		return ActionStart
	default:
		m.log.Debug("input: ignored %s key in normal mode", k.Type)
	}
	return ActionNone
}

func (m *Machine) editing(st *domain.AppState, k domain.Key) {
	switch k.Type {
	case domain.KeyEscape:
		st.Mode = domain.ModeNormal
		m.log.Debug("input: editing -> normal, text kept (%q)", string(st.Config.Text))
	case domain.KeyRune:
		st.Config.Text = append(st.Config.Text, k.Rune)
	case domain.KeyBackspace:
		if n := len(st.Config.Text); n > 0 {
			st.Config.Text = st.Config.Text[:n-1]
		}
	case domain.KeyEnter:
		st.Config.Committed = ParseSeconds(string(st.Config.Text))
		st.Mode = domain.ModeNormal
		m.log.Info("duration set to %s (text=%q)", st.Config.Committed, string(st.Config.Text))
	default:
		m.log.Debug("input: ignored %s key in editing mode", k.Type)
	}
}

// ParseSeconds converts duration text into a whole number of seconds.
// Unsigned base-10 integers that fit in 32 bits are accepted, with an
// optional single leading '+'. Empty text, a bare '+', a minus sign,
// whitespace and anything else yield FallbackDuration.
func ParseSeconds(text string) time.Duration {
	if len(text) > 1 && text[0] == '+' {
		text = text[1:]
	}
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return FallbackDuration
	}
	return time.Duration(v) * time.Second
}
