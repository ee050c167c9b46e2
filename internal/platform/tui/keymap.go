package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/picofb/internal/core"
)

// KeyMap holds the bindings handled by the backend itself rather than
// forwarded to the engine.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

var specialKeys = map[tea.KeyType]core.Key{
	tea.KeySpace:     core.KeySpace,
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyEsc:       core.KeyEscape,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyTab:       core.KeyTab,
	tea.KeyDelete:    core.KeyDelete,
	tea.KeyInsert:    core.KeyInsert,
	tea.KeyHome:      core.KeyHome,
	tea.KeyEnd:       core.KeyEnd,
	tea.KeyPgUp:      core.KeyPageUp,
	tea.KeyPgDown:    core.KeyPageDown,
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyF1:        core.KeyF1,
	tea.KeyF2:        core.KeyF2,
	tea.KeyF3:        core.KeyF3,
	tea.KeyF4:        core.KeyF4,
	tea.KeyF5:        core.KeyF5,
	tea.KeyF6:        core.KeyF6,
	tea.KeyF7:        core.KeyF7,
	tea.KeyF8:        core.KeyF8,
	tea.KeyF9:        core.KeyF9,
	tea.KeyF10:       core.KeyF10,
	tea.KeyF11:       core.KeyF11,
	tea.KeyF12:       core.KeyF12,
}

// TranslateKey maps a Bubble Tea key message to a key. Rune input maps by
// character, ignoring case; anything else unmapped is KeyUnknown.
func TranslateKey(msg tea.KeyMsg) core.Key {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return core.KeyUnknown
		}
		return core.KeyForRune(msg.Runes[0])
	}
	return specialKeys[msg.Type]
}
