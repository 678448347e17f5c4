package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/modal/adapter-bubbletea/highlighter"
	"github.com/ionut-t/modal/core"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// gutterWidth is the width of the line number column, the separating space
// included.
func (m *Model) gutterWidth() int {
	if !m.showLineNumbers {
		return 0
	}

	maxWidth := len(strconv.Itoa(max(1, m.editor.Buffer().LineCount())))
	if m.relativeNumbers {
		maxWidth = max(maxWidth, len(strconv.Itoa(max(1, m.viewport.Height))))
	}

	return min(max(4, maxWidth)+1, 10)
}

func (m *Model) textWidth() int {
	return max(1, m.width-m.gutterWidth())
}

// cell returns what is drawn for r.
func cell(r rune) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", tabWidth)
	case r < ' ' || r == 0x7f:
		return "?"
	default:
		return string(r)
	}
}

// cellWidth is the display width of col in runes. Columns past the end of
// the line are one cell.
func cellWidth(runes []rune, col int) int {
	if col < len(runes) {
		return uniseg.StringWidth(cell(runes[col]))
	}
	return 1
}

// scrollToCursor moves the view so that the cursor cell is visible.
func (m *Model) scrollToCursor() {
	buffer := m.editor.Buffer()
	c := m.editor.Cursor()
	height := m.viewport.Height

	if c.Row < m.topLine {
		m.topLine = c.Row
	} else if c.Row >= m.topLine+height {
		m.topLine = c.Row - height + 1
	}
	m.topLine = max(0, min(m.topLine, buffer.LineCount()-height))

	line, err := buffer.Line(c.Row)
	if err != nil {
		m.leftCol = 0
		return
	}
	runes := []rune(line.Content())
	if c.Col < m.leftCol {
		m.leftCol = c.Col
	}

	// Widest window ending at the cursor, walked back from it.
	from, width := c.Col, cellWidth(runes, c.Col)
	for from > m.leftCol {
		w := cellWidth(runes, from-1)
		if width+w > m.textWidth() {
			break
		}
		width += w
		from--
	}
	m.leftCol = from
}

func (m *Model) renderVisibleSlice() {
	if m.editor == nil {
		return
	}
	lines := m.editor.Buffer().Lines()
	cursor := m.editor.Cursor()

	rows := make([]string, 0, m.viewport.Height)
	for i := range m.viewport.Height {
		row := m.topLine + i
		if row >= len(lines) {
			rows = append(rows, m.theme.TildeStyle.Render("~"))
			continue
		}
		rows = append(rows, m.lineNumber(row, cursor.Row)+m.renderLine(row, lines, cursor))
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
}

func (m *Model) lineNumber(row, cursorRow int) string {
	if !m.showLineNumbers {
		return ""
	}

	n, style := row+1, m.theme.LineNumberStyle
	switch {
	case row == cursorRow:
		style = m.theme.CurrentLineNumberStyle
	case m.relativeNumbers:
		n = max(row-cursorRow, cursorRow-row)
	}
	return style.Width(m.gutterWidth()-1).Render(strconv.Itoa(n)) + " "
}

// renderLine draws the visible part of one line, with syntax colours and the
// cursor cell. A cursor past the end of the line is drawn on padding.
func (m *Model) renderLine(row int, lines []string, cursor core.Cursor) string {
	runes := []rune(lines[row])

	var spans []highlighter.Span
	if m.highlighter != nil {
		spans = m.highlighter.Spans(row, lines)
	}

	var b strings.Builder
	width, available := 0, m.textWidth()
	for col := m.leftCol; col < len(runes) || (row == cursor.Row && col <= cursor.Col); col++ {
		text := " "
		if col < len(runes) {
			text = cell(runes[col])
		}

		w := uniseg.StringWidth(text)
		if width+w > available {
			break
		}
		width += w

		switch {
		case row == cursor.Row && col == cursor.Col:
			b.WriteString(m.theme.CursorStyle.Render(text))
		case spans != nil:
			if tokenType, ok := highlighter.TypeAt(spans, col); ok {
				b.WriteString(m.highlighter.Style(tokenType).Render(text))
				break
			}
			b.WriteString(text)
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

func (m *Model) statusLine() string {
	state := m.editor.State()

	mode := m.theme.modeStyle(state.Mode).Render(" " + strings.ToUpper(string(state.Mode)) + " ")

	count := ""
	if state.PendingCount != nil {
		count = m.theme.CountStyle.Render(" " + strconv.Itoa(*state.PendingCount) + " ")
	}

	name := " " + m.fileName
	position := fmt.Sprintf("%d:%d ", state.Cursor.Row+1, state.Cursor.Col+1)

	gap := m.width - lipgloss.Width(mode) - lipgloss.Width(count) -
		uniseg.StringWidth(name) - uniseg.StringWidth(position)

	return mode + count + m.theme.StatusLineStyle.Render(name+strings.Repeat(" ", max(0, gap))+position)
}

func (m *Model) noticeLine() string {
	if m.notice == nil {
		return ""
	}
	return m.theme.notificationStyle(m.notice.Kind).Render(m.notice.Text)
}
