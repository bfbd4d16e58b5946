// Package display provides the terminal UI using Bubble Tea.
//
// [UI] is the bridge between the control loop and Bubble Tea: it
// implements domain.Renderer by sending frames into the program and
// domain.KeySource by handing out the keys the program receives. The
// program owns the terminal (raw mode, alternate screen, mouse capture)
// for as long as Run is blocking.
package display

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Renderer  = (*UI)(nil)
	_ domain.KeySource = (*UI)(nil)
)

// keyBuffer bounds how many keys can queue up while the control loop is
// busy with a countdown. Extra keys are dropped.
const keyBuffer = 32

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Another goroutine may call
// [UI.Render] and [UI.ReadKey] after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	keyCh   chan domain.Key
	readyCh chan struct{}
	quitCh  chan struct{}
	log     *logger.Logger
	done    atomic.Bool
	opts    []tea.ProgramOption
}

// NewUI creates the display. Call Run() to start. Extra program options
// are appended after the defaults (alt screen, mouse capture).
func NewUI(log *logger.Logger, opts ...tea.ProgramOption) *UI {
	return &UI{
		keyCh:   make(chan domain.Key, keyBuffer),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
		log:     log,
		opts:    opts,
	}
}

// Render sends a frame to the program. Thread-safe. Returns
// domain.ErrNotRunning before Run or after the program exits.
func (u *UI) Render(f domain.Frame) error {
	if u.program == nil || u.done.Load() {
		return domain.ErrNotRunning
	}
	u.program.Send(frameMsg(f))
	return nil
}

// ReadKey blocks until a key arrives, ctx is cancelled or the program
// exits.
func (u *UI) ReadKey(ctx context.Context) (domain.Key, error) {
	select {
	case k := <-u.keyCh:
		return k, nil
	case <-ctx.Done():
		return domain.Key{}, ctx.Err()
	case <-u.quitCh:
		return domain.Key{}, domain.ErrInputClosed
	}
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	w, h := termSize()
	m := newModel(u.keyCh, u.readyCh, u.log, w, h)

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, u.opts...)

	u.program = tea.NewProgram(m, opts...)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}
