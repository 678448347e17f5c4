package adapter_bubbletea

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/modal/adapter-bubbletea/highlighter"
	"github.com/ionut-t/modal/core"
)

// Model renders a core.Editor in a terminal and feeds it keys.
type Model struct {
	editor          *core.Editor
	viewport        viewport.Model
	width           int
	height          int
	showLineNumbers bool
	relativeNumbers bool
	showStatusLine  bool
	theme           Theme
	highlighter     *highlighter.Highlighter
	fileName        string

	topLine int // first buffer row in view
	leftCol int // first char column in view

	// notice is the notification raised by the last key, if any.
	notice *core.Notification
}

type QuitMsg struct{}

type NotificationMsg struct {
	Notification core.Notification
}

type ModeChangeMsg struct {
	From core.Mode
	To   core.Mode
}

type DeleteMsg struct {
	Lines   int
	Content string
}

func New(e *core.Editor, width, height int) Model {
	m := Model{
		editor:          e,
		viewport:        viewport.New(width, max(height-2, 1)),
		showLineNumbers: true,
		showStatusLine:  true,
		theme:           DefaultTheme,
	}
	m.SetSize(width, height)
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeHeight(), 1)
	m.scrollToCursor()
	m.renderVisibleSlice()
}

func (m *Model) chromeHeight() int {
	if m.showStatusLine {
		return 2
	}
	return 0
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
	m.renderVisibleSlice()
}

// SetFileName sets the name shown in the status line.
func (m *Model) SetFileName(name string) {
	m.fileName = name
}

// SetLanguage enables syntax highlighting. The lexer is chosen by language,
// or by the file name when language is empty.
func (m *Model) SetLanguage(language, theme string) {
	m.highlighter = highlighter.New(language, m.fileName, theme)
	m.renderVisibleSlice()
}

// DisableHighlighting turns syntax highlighting off.
func (m *Model) DisableHighlighting() {
	m.highlighter = nil
	m.renderVisibleSlice()
}

func (m *Model) ShowLineNumbers(show bool) {
	m.showLineNumbers = show
	m.renderVisibleSlice()
}

func (m *Model) ShowRelativeLineNumbers(show bool) {
	m.relativeNumbers = show
	m.renderVisibleSlice()
}

func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// Editor returns the underlying editing session.
func (m *Model) Editor() *core.Editor {
	return m.editor
}

// Content returns the current buffer text.
func (m *Model) Content() string {
	return m.editor.Buffer().String()
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.handleKeys(convertBubbleKey(msg))

	case NotificationMsg, ModeChangeMsg, DeleteMsg:
		cmds = append(cmds, m.listenForEditorUpdate())

	case QuitMsg:
		return m, tea.Quit
	}

	m.renderVisibleSlice()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeys(keys []core.KeyEvent) {
	before, size := m.editor.State(), m.editor.Buffer().Len()
	for _, key := range keys {
		// Failures are recorded as notifications by the editor.
		_ = m.editor.HandleKey(key)
	}
	after := m.editor.State()

	m.notice = nil
	if after.NotificationSeq != before.NotificationSeq && after.HasNotification {
		n := after.Notification
		m.notice = &n
	}

	if m.highlighter != nil && (editing(before.Mode) || editing(after.Mode) || m.editor.Buffer().Len() != size) {
		m.highlighter.Invalidate()
	}

	m.scrollToCursor()
}

// editing reports whether keys handled in mode may change the text.
func editing(mode core.Mode) bool {
	return mode == core.InsertMode || mode == core.DeleteMode
}

func (m Model) View() string {
	content := m.viewport.View()
	if !m.showStatusLine {
		return content
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.statusLine(),
		m.noticeLine(),
	)
}

// listenForEditorUpdate turns the next editor signal into a tea.Msg.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	updates := m.editor.UpdateSignalChannel()
	return func() tea.Msg {
		switch signal := (<-updates).(type) {
		case core.QuitSignal:
			return QuitMsg{}
		case core.NotificationSignal:
			return NotificationMsg{Notification: signal.Value()}
		case core.ModeSignal:
			from, to := signal.Value()
			return ModeChangeMsg{From: from, To: to}
		case core.DeleteSignal:
			lines, content := signal.Value()
			return DeleteMsg{Lines: lines, Content: content}
		}
		return nil
	}
}
