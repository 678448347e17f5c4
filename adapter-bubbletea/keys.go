package adapter_bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/modal/core"
)

var specialKeys = map[tea.KeyType]core.KeyCode{
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyEsc:       core.KeyEscape,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyHome:      core.KeyHome,
	tea.KeyEnd:       core.KeyEnd,
	tea.KeyDelete:    core.KeyDelete,
	tea.KeyPgUp:      core.KeyPageUp,
	tea.KeyPgDown:    core.KeyPageDown,
	tea.KeyInsert:    core.KeyInsert,
}

// convertBubbleKey converts a bubbletea key to editor key events. A paste
// arrives as one message carrying many runes and becomes one event per rune.
func convertBubbleKey(msg tea.KeyMsg) []core.KeyEvent {
	var mods core.KeyModifiers
	if msg.Alt {
		mods |= core.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]core.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			key := core.RuneKey(r)
			key.Modifiers = mods
			keys = append(keys, key)
		}
		return keys
	case tea.KeySpace:
		return []core.KeyEvent{{Rune: ' ', Key: core.KeySpace, Modifiers: mods}}
	case tea.KeyTab:
		return []core.KeyEvent{{Rune: '\t', Key: core.KeyTab, Modifiers: mods}}
	case tea.KeyCtrlC:
		return []core.KeyEvent{{Rune: 'c', Modifiers: mods | core.ModCtrl}}
	}

	if code, ok := specialKeys[msg.Type]; ok {
		return []core.KeyEvent{{Key: code, Modifiers: mods}}
	}
	return []core.KeyEvent{{Key: core.KeyUnknown, Modifiers: mods}}
}
