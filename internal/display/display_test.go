package display

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
	"github.com/hammamikhairi/ottotimer/internal/view"
)

func testModel(buf int) (model, chan domain.Key) {
	ch := make(chan domain.Key, buf)
	return newModel(ch, make(chan struct{}), logger.New(logger.LevelOff, nil), 100, 40), ch
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []domain.Key
	}{
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}, []domain.Key{{Type: domain.KeyQuit}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []domain.Key{{Type: domain.KeyEnter}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []domain.Key{{Type: domain.KeyEscape}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []domain.Key{{Type: domain.KeyBackspace}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []domain.Key{domain.RuneKey(' ')}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}, []domain.Key{domain.RuneKey('e')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("90")}, []domain.Key{domain.RuneKey('9'), domain.RuneKey('0')}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e"), Alt: true}, nil},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKey(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("key %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUpdateForwardsKeys(t *testing.T) {
	m, ch := testModel(4)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if k := <-ch; k != domain.RuneKey('9') {
		t.Fatalf("expected '9', got %+v", k)
	}
	if k := <-ch; k.Type != domain.KeyEnter {
		t.Fatalf("expected enter, got %+v", k)
	}
}

func TestUpdateDropsKeysWhenBufferFull(t *testing.T) {
	m, ch := testModel(1)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})
	if got := next.(model).dropped; got != 1 {
		t.Fatalf("expected 1 dropped key, got %d", got)
	}
	if k := <-ch; k != domain.RuneKey('1') {
		t.Fatalf("expected first key kept, got %+v", k)
	}
}

func TestCtrlCQuitsProgram(t *testing.T) {
	m, ch := testModel(1)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if len(ch) != 0 {
		t.Fatal("ctrl+c must not reach the control loop")
	}
}

func TestIdleView(t *testing.T) {
	m, _ := testModel(1)
	if m.View() != "" {
		t.Fatal("expected empty view before the first frame")
	}

	next, _ := m.Update(frameMsg(domain.Frame{
		Screen:          domain.ScreenIdle,
		Mode:            domain.ModeEditing,
		DurationText:    "90",
		WaitingForStart: true,
		Remaining:       90 * time.Second,
	}))
	out := next.(model).View()

	for _, want := range []string{"TIMER", "'90'", "EDITING", "Seconds", "1:30"} {
		if !strings.Contains(out, want) {
			t.Fatalf("idle view missing %q:\n%s", want, out)
		}
	}
}

func TestCountdownView(t *testing.T) {
	m, _ := testModel(1)

	next, _ := m.Update(frameMsg(domain.Frame{
		Screen:      domain.ScreenCountdown,
		ElapsedText: "5",
		Progress:    0.5,
		Remaining:   5 * time.Second,
	}))
	out := next.(model).View()
	for _, want := range []string{"Debug info: 5 false 0.5", "Progress", "0:05"} {
		if !strings.Contains(out, want) {
			t.Fatalf("countdown view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "DONE!") {
		t.Fatal("half-way countdown should not be done")
	}

	next, _ = next.Update(frameMsg(domain.Frame{
		Screen:          domain.ScreenCountdown,
		ElapsedText:     "10",
		WaitingForStart: true,
		Progress:        1.02,
	}))
	if out := next.(model).View(); !strings.Contains(out, "DONE!") {
		t.Fatalf("expected DONE! once progress passes 1.0:\n%s", out)
	}
}

func TestRenderBars(t *testing.T) {
	out := renderBars(view.BarHeights(view.LevelStarted), 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(lines))
	}
	if strings.Contains(lines[0], "█") {
		t.Fatal("top row should be empty at the first level")
	}
	if strings.Count(lines[7], "███") != 4 {
		t.Fatalf("expected 4 bars on the bottom row, got %q", lines[7])
	}

	full := strings.Split(renderBars(view.BarHeights(view.LevelComplete), 8), "\n")
	// The 90 and 100 groups both round up to the full height.
	if strings.Count(full[0], "███") != 8 {
		t.Fatalf("expected 8 bars on the top row, got %q", full[0])
	}

	if renderBars(nil, 8) != "" {
		t.Fatal("expected no output without bars")
	}
}

func TestWindowTitle(t *testing.T) {
	tests := []struct {
		frame domain.Frame
		want  string
	}{
		{domain.Frame{Screen: domain.ScreenIdle}, "ottotimer"},
		{domain.Frame{Screen: domain.ScreenCountdown, Progress: 0.1, Remaining: 45 * time.Second}, "ottotimer — 45 seconds left"},
		{domain.Frame{Screen: domain.ScreenCountdown, Progress: 1}, "ottotimer — DONE!"},
	}
	for _, tt := range tests {
		if got := windowTitle(tt.frame); got != tt.want {
			t.Fatalf("windowTitle = %q, want %q", got, tt.want)
		}
	}
}

func TestUIReadKey(t *testing.T) {
	u := NewUI(logger.New(logger.LevelOff, nil))

	if err := u.Render(domain.Frame{}); !errors.Is(err, domain.ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning before Run, got %v", err)
	}

	u.keyCh <- domain.RuneKey('e')
	k, err := u.ReadKey(context.Background())
	if err != nil || k != domain.RuneKey('e') {
		t.Fatalf("ReadKey = %+v, %v", k, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := u.ReadKey(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	close(u.quitCh)
	if _, err := u.ReadKey(context.Background()); !errors.Is(err, domain.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}
