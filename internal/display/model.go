package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottotimer/internal/domain"
	"github.com/hammamikhairi/ottotimer/internal/logger"
	"github.com/hammamikhairi/ottotimer/internal/timer"
	"github.com/hammamikhairi/ottotimer/internal/view"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Bold(true)

	// Help and debug banner, green like a status line.
	bannerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#166534")).
			Foreground(lipgloss.Color("#f0fdf4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	editingInputStyle = inputStyle.
				BorderForeground(lipgloss.Color("#fde68a"))

	normalTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Italic(true)

	editingTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15")).
			Background(lipgloss.Color("#991b1b"))

	remainingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)
)

const helpText = "CTRL-Q to quit, SPACE to start timer, E to edit timer then Enter to confirm or Escape to quit editing"

// Bar chart geometry.
const (
	chartRows = 8
	barWidth  = 3
	barGap    = 1
)

// ── Bubble Tea model ─────────────────────────────────────────────

// frameMsg carries a frame from the control loop into the program.
type frameMsg domain.Frame

type model struct {
	keyCh   chan<- domain.Key
	readyCh chan struct{}
	log     *logger.Logger
	gauge   progress.Model
	frame   domain.Frame
	drawn   bool
	width   int
	height  int
	dropped int
}

func newModel(keyCh chan<- domain.Key, readyCh chan struct{}, log *logger.Logger, width, height int) model {
	m := model{
		keyCh:   keyCh,
		readyCh: readyCh,
		log:     log,
		gauge:   progress.New(progress.WithDefaultGradient()),
	}
	m.resize(width, height)
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		signalReady(m.readyCh),
		tea.SetWindowTitle("ottotimer"),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		for _, k := range translateKey(msg) {
			select {
			case m.keyCh <- k:
			default:
				m.dropped++
				m.log.Debug("display: key buffer full, dropped %s key (total=%d)", k.Type, m.dropped)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.frame = domain.Frame(msg)
		m.drawn = true
		return m, tea.SetWindowTitle(windowTitle(m.frame))
	}

	return m, nil
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.gauge.Width = m.contentWidth()
}

func (m model) View() string {
	if !m.drawn {
		return ""
	}

	var body string
	switch m.frame.Screen {
	case domain.ScreenCountdown:
		body = m.countdownView()
	default:
		body = m.idleView()
	}

	title := lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, titleStyle.Render("TIMER"))
	return frameStyle.Width(m.contentWidth() + 6).Render(title + "\n\n" + body)
}

// contentWidth is the usable width inside the border and padding.
func (m model) contentWidth() int {
	if w := m.width - 8; w > 20 {
		return w
	}
	return 20
}

func (m model) idleView() string {
	f := m.frame

	tag := normalTagStyle.Render("NORMAL")
	box := inputStyle
	if f.Mode == domain.ModeEditing {
		tag = editingTagStyle.Render("EDITING")
		box = editingInputStyle
	}

	// Quotes make leading/trailing spaces visible.
	field := box.Render("'" + f.DurationText + "'")

	var b strings.Builder
	b.WriteString(bannerStyle.Width(m.contentWidth()).Render(helpText))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Seconds") + "  " + tag)
	b.WriteByte('\n')
	b.WriteString(field)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("next countdown: ") + remainingStyle.Render(timer.FormatClock(f.Remaining)))
	return b.String()
}

func (m model) countdownView() string {
	f := m.frame

	debug := fmt.Sprintf("Debug info: %s %t %v", f.ElapsedText, f.WaitingForStart, f.Progress)

	ratio := f.Progress
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	status := labelStyle.Render("remaining ") + remainingStyle.Render(timer.FormatClock(f.Remaining))
	if f.Progress >= 1.0 {
		status = doneStyle.Render("DONE!")
	}

	var b strings.Builder
	b.WriteString(bannerStyle.Width(m.contentWidth()).Render(debug))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Progress"))
	b.WriteByte('\n')
	b.WriteString(m.gauge.ViewAs(ratio))
	b.WriteString("\n\n")
	b.WriteString(renderBars(view.BarHeights(view.Bucket(f.Progress)), chartRows))
	b.WriteString("\n\n")
	b.WriteString(status)
	return b.String()
}

// renderBars draws a vertical bar chart with rows lines. Heights are out
// of 100.
func renderBars(heights []int, rows int) string {
	if rows <= 0 || len(heights) == 0 {
		return ""
	}

	bar := strings.Repeat("█", barWidth)
	blank := strings.Repeat(" ", barWidth)
	gap := strings.Repeat(" ", barGap)

	// Rows filled per bar, rounded up so every non-zero bar shows.
	filled := make([]int, len(heights))
	for i, h := range heights {
		filled[i] = (h*rows + 99) / 100
	}

	lines := make([]string, 0, rows)
	for r := rows; r >= 1; r-- {
		var line strings.Builder
		for i := range heights {
			if i > 0 {
				line.WriteString(gap)
			}
			if filled[i] >= r {
				line.WriteString(barStyle.Render(bar))
			} else {
				line.WriteString(blank)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// windowTitle mirrors the frame in the terminal title.
func windowTitle(f domain.Frame) string {
	switch {
	case f.Screen == domain.ScreenCountdown && f.Progress >= 1.0:
		return "ottotimer — DONE!"
	case f.Screen == domain.ScreenCountdown:
		return "ottotimer — " + timer.FormatRemaining(f.Remaining) + " left"
	default:
		return "ottotimer"
	}
}
