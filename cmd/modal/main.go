package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	editor "github.com/ionut-t/modal/adapter-bubbletea"
	"github.com/ionut-t/modal/adapter-bubbletea/highlighter"
	"github.com/ionut-t/modal/config"
	"github.com/ionut-t/modal/core"
	"github.com/ionut-t/modal/loader"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the config file")
	lang := flag.String("lang", "", "language used for syntax highlighting")
	strict := flag.Bool("strict", false, "panic on internal buffer errors")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: modal [-config path] [-lang name] [-strict] <file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configPath, *lang, *strict); err != nil {
		fmt.Fprintf(os.Stderr, "modal: %v\n", err)
		os.Exit(1)
	}
}

func run(file, configPath, lang string, strict bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := checkTheme(cfg.Highlight); err != nil {
		return fmt.Errorf("config %s: %w", configPath, err)
	}
	if lang != "" {
		cfg.Highlight.Language = lang
	}
	cfg.Strict = cfg.Strict || strict

	logger, closeLog, err := openLog(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	text, err := loader.Load(file)
	if err != nil {
		return err
	}
	logger.Printf("opened %s", file)

	opts := []core.Option{
		core.WithLogger(logger),
		core.WithStrict(cfg.Strict),
		core.WithNotificationLimit(cfg.Notifications.Limit),
	}
	if clip := (editor.SystemClipboard{}); clip.Available() {
		opts = append(opts, core.WithClipboard(clip))
	}

	e := core.NewEditor(core.NewBuffer(text), opts...)

	m := editor.New(e, defaultWidth, defaultHeight)
	m.WithTheme(editor.NewTheme(palette(cfg.Theme)))
	m.SetFileName(filepath.Base(file))
	m.ShowLineNumbers(cfg.Editor.LineNumbers)
	m.ShowRelativeLineNumbers(cfg.Editor.RelativeNumbers)
	if cfg.Highlight.Enabled {
		m.SetLanguage(cfg.Highlight.Language, cfg.Highlight.Theme)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// checkTheme rejects a highlight theme chroma does not know.
func checkTheme(cfg config.HighlightConfig) error {
	if cfg.Theme != "" && !highlighter.ThemeExists(cfg.Theme) {
		return fmt.Errorf("unknown highlight theme %q", cfg.Theme)
	}
	return nil
}

// openLog returns a logger writing to the configured file, every line
// prefixed with a session id.
func openLog(cfg config.LogConfig) (*log.Logger, func(), error) {
	if !cfg.Enabled || cfg.File == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}

	session, err := uuid.NewV7()
	if err != nil {
		session = uuid.New()
	}

	logger := log.New(f, fmt.Sprintf("[%s] ", session), log.LstdFlags|log.Lmsgprefix)
	return logger, func() { _ = f.Close() }, nil
}

// palette applies the configured colours over the built-in ones.
func palette(t config.ThemeConfig) editor.Palette {
	p := editor.DefaultPalette
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	override(&p.Normal, t.Normal)
	override(&p.Insert, t.Insert)
	override(&p.GoTo, t.GoTo)
	override(&p.Delete, t.Delete)
	override(&p.StatusBackground, t.StatusBackground)
	override(&p.StatusForeground, t.StatusForeground)
	override(&p.LineNumber, t.LineNumber)
	override(&p.CurrentLineNumber, t.CurrentLineNumber)
	override(&p.Info, t.Info)
	override(&p.Warning, t.Warning)
	override(&p.Error, t.Error)
	override(&p.Success, t.Success)
	return p
}
