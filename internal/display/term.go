package display

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// termSize returns the current terminal size, or 80x24 as fallback.
// Bubble Tea reports the real size with its first WindowSizeMsg; this
// only covers the frames drawn before that.
func termSize() (int, int) {
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}
