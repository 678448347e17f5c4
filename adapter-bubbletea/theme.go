package adapter_bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/modal/core"
)

// Palette holds the colours a theme is built from. Values are anything
// lipgloss.Color accepts: ANSI numbers ("62") or hex ("#7d56f4").
type Palette struct {
	Normal            string
	Insert            string
	GoTo              string
	Delete            string
	StatusBackground  string
	StatusForeground  string
	LineNumber        string
	CurrentLineNumber string
	Info              string
	Warning           string
	Error             string
	Success           string
}

var DefaultPalette = Palette{
	Normal:            "62",
	Insert:            "26",
	GoTo:              "127",
	Delete:            "160",
	StatusBackground:  "236",
	StatusForeground:  "255",
	LineNumber:        "240",
	CurrentLineNumber: "252",
	Info:              "39",
	Warning:           "208",
	Error:             "196",
	Success:           "34",
}

type Theme struct {
	NormalModeStyle        lipgloss.Style
	InsertModeStyle        lipgloss.Style
	GoToModeStyle          lipgloss.Style
	DeleteModeStyle        lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CountStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorStyle            lipgloss.Style
	TildeStyle             lipgloss.Style
	InfoStyle              lipgloss.Style
	WarningStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	SuccessStyle           lipgloss.Style
}

func NewTheme(p Palette) Theme {
	badge := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color("255")).Bold(true)
	}
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		NormalModeStyle:        badge(p.Normal),
		InsertModeStyle:        badge(p.Insert),
		GoToModeStyle:          badge(p.GoTo),
		DeleteModeStyle:        badge(p.Delete),
		StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color(p.StatusBackground)).Foreground(lipgloss.Color(p.StatusForeground)),
		CountStyle:             lipgloss.NewStyle().Background(lipgloss.Color(p.StatusBackground)).Foreground(lipgloss.Color(p.Warning)).Bold(true),
		LineNumberStyle:        fg(p.LineNumber).Align(lipgloss.Right),
		CurrentLineNumberStyle: fg(p.CurrentLineNumber).Align(lipgloss.Right),
		CursorStyle:            lipgloss.NewStyle().Reverse(true),
		TildeStyle:             fg(p.LineNumber),
		InfoStyle:              fg(p.Info),
		WarningStyle:           fg(p.Warning),
		ErrorStyle:             fg(p.Error).Bold(true),
		SuccessStyle:           fg(p.Success),
	}
}

var DefaultTheme = NewTheme(DefaultPalette)

func (t Theme) modeStyle(mode core.Mode) lipgloss.Style {
	switch mode {
	case core.InsertMode:
		return t.InsertModeStyle
	case core.GoToMode:
		return t.GoToModeStyle
	case core.DeleteMode:
		return t.DeleteModeStyle
	default:
		return t.NormalModeStyle
	}
}

func (t Theme) notificationStyle(kind core.NotificationKind) lipgloss.Style {
	switch kind {
	case core.NotificationWarning:
		return t.WarningStyle
	case core.NotificationError:
		return t.ErrorStyle
	case core.NotificationSuccess:
		return t.SuccessStyle
	default:
		return t.InfoStyle
	}
}
