package core

import (
	"fmt"
	"strings"
	"unicode"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

var keyNames = map[KeyCode]string{
	KeyUnknown:   "Unknown",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SpecialKey(%d)", int(k))
}

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is one keystroke: a character (Rune) or a special key (Key),
// plus modifiers.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// RuneKey returns the event for typing r.
func RuneKey(r rune) KeyEvent {
	if r == ' ' {
		return KeyEvent{Rune: r, Key: KeySpace}
	}
	return KeyEvent{Rune: r}
}

// SpecialKey returns the event for a non-character key.
func SpecialKey(code KeyCode) KeyEvent {
	return KeyEvent{Key: code}
}

// CtrlKey returns the event for Ctrl+r.
func CtrlKey(r rune) KeyEvent {
	return KeyEvent{Rune: r, Modifiers: ModCtrl}
}

// Digit returns the value of a plain digit key.
func (k KeyEvent) Digit() (int, bool) {
	if k.Modifiers&(ModCtrl|ModAlt) != 0 || k.Rune < '0' || k.Rune > '9' {
		return 0, false
	}
	return int(k.Rune - '0'), true
}

// Printable reports whether the event types a visible char.
func (k KeyEvent) Printable() bool {
	return k.Rune != 0 && k.Modifiers&(ModCtrl|ModAlt) == 0 && unicode.IsPrint(k.Rune)
}

// Is reports whether the event is the plain key r.
func (k KeyEvent) Is(r rune) bool {
	return k.Rune == r && k.Modifiers&(ModCtrl|ModAlt) == 0
}

func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Key == KeyUnknown && k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		parts = append(parts, k.Key.String())
	}

	return strings.Join(parts, "+")
}
