package domain

// KeyType classifies a key event after it leaves the terminal layer.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyQuit // Ctrl+Q
)

// String returns a human-readable key type.
func (k KeyType) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyBackspace:
		return "backspace"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Key is a single keyboard event. Rune is only set for KeyRune; the
// space bar arrives as KeyRune with Rune ' '.
type Key struct {
	Type KeyType
	Rune rune
}

// RuneKey is a shorthand for a printable key.
func RuneKey(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}
