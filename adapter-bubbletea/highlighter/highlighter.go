package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const DefaultTheme = "catppuccin-mocha"

// Highlighter colours buffer lines with a chroma lexer. Lines are tokenized
// together, so constructs spanning lines (comments, strings) come out right.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	lines      map[int][]Span // spans by line number, nil until tokenized
	styleCache map[chroma.TokenType]lipgloss.Style
	mu         sync.RWMutex
}

// Span is a run of chars on one line sharing a token type. Start and End are
// char columns, End exclusive.
type Span struct {
	Type  chroma.TokenType
	Start int
	End   int
}

// New picks a lexer by language name, then by filename, falling back to
// plain text. theme is a chroma style name.
func New(language, filename, theme string) *Highlighter {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	if theme == "" {
		theme = DefaultTheme
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Language returns the name of the lexer in use.
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Invalidate drops the token cache. Call it after every edit.
func (h *Highlighter) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = nil
}

func (h *Highlighter) tokenize(lines []string) {
	h.lines = make(map[int][]Span, len(lines))

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	row, col := 0, 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if n := len([]rune(before)); n > 0 {
				h.lines[row] = append(h.lines[row], Span{Type: token.Type, Start: col, End: col + n})
				col += n
			}
			if !found {
				break
			}
			row++
			col = 0
			value = after
		}
	}
}

// Spans returns the token spans of line row, tokenizing lines on first use.
func (h *Highlighter) Spans(row int, lines []string) []Span {
	h.mu.RLock()
	tokenized := h.lines != nil
	h.mu.RUnlock()

	if !tokenized {
		h.mu.Lock()
		if h.lines == nil {
			h.tokenize(lines)
		}
		h.mu.Unlock()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lines[row]
}

// Style converts a chroma token type to a lipgloss style.
func (h *Highlighter) Style(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style
	return style
}

// TypeAt returns the token type covering col.
func TypeAt(spans []Span, col int) (chroma.TokenType, bool) {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return span.Type, true
		}
	}
	return 0, false
}

// ThemeExists reports whether chroma knows the style name.
func ThemeExists(name string) bool {
	for _, known := range styles.Names() {
		if known == name {
			return true
		}
	}
	return false
}
