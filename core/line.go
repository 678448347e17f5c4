package core

import "github.com/rivo/uniseg"

// Line is a read-only view of one buffer line. It shares memory with the
// buffer and is only valid until the next edit.
type Line struct {
	runes      []rune
	terminated bool
}

// Len is the raw length, the terminator included.
func (l Line) Len() int {
	if l.terminated {
		return len(l.runes) + 1
	}
	return len(l.runes)
}

// VisualLen is the number of chars shown, the terminator excluded.
func (l Line) VisualLen() int {
	return len(l.runes)
}

func (l Line) IsEmpty() bool {
	return l.Len() == 0
}

// IsVisuallyEmpty is true for a line with no chars besides its terminator.
func (l Line) IsVisuallyEmpty() bool {
	return len(l.runes) == 0
}

func (l Line) HasTerminator() bool {
	return l.terminated
}

// At returns the char at col, the terminator included.
func (l Line) At(col int) (rune, bool) {
	switch {
	case col >= 0 && col < len(l.runes):
		return l.runes[col], true
	case l.terminated && col == len(l.runes):
		return '\n', true
	default:
		return 0, false
	}
}

// Content returns the visible text of the line.
func (l Line) Content() string {
	return string(l.runes)
}

// String returns the raw text of the line, "\n" included when present.
func (l Line) String() string {
	if l.terminated {
		return string(l.runes) + "\n"
	}
	return string(l.runes)
}

// Width returns the terminal cell width of the visible text.
func (l Line) Width() int {
	return uniseg.StringWidth(string(l.runes))
}

// WidthTo returns the cell width of the first col chars.
func (l Line) WidthTo(col int) int {
	col = min(max(col, 0), len(l.runes))
	return uniseg.StringWidth(string(l.runes[:col]))
}
