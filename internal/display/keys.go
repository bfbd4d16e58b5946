package display

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/ottotimer/internal/domain"
)

// translateKey converts a Bubble Tea key into domain keys. Pasted text
// arrives as one message with several runes and yields one key per rune.
// Keys the application has no use for yield nothing.
func translateKey(msg tea.KeyMsg) []domain.Key {
	switch msg.Type {
	case tea.KeyCtrlQ:
		return []domain.Key{{Type: domain.KeyQuit}}
	case tea.KeyEnter:
		return []domain.Key{{Type: domain.KeyEnter}}
	case tea.KeyEsc:
		return []domain.Key{{Type: domain.KeyEscape}}
	case tea.KeyBackspace:
		return []domain.Key{{Type: domain.KeyBackspace}}
	case tea.KeySpace:
		return []domain.Key{domain.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]domain.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, domain.RuneKey(r))
		}
		return out
	}
	return nil
}
