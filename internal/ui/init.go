package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jlv/internal/config"
	"jlv/internal/ingest"
	"jlv/internal/parse"
	"jlv/internal/store"
	"jlv/internal/util/logx"
	"jlv/internal/view"
)

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		store:  store.New(),
		engine: view.NewEngine(20),
		styles: NewStyles(cfg.Theme != config.ThemeLight),
		keymap: DefaultKeyMap(),
		input:  textinput.New(),
		wrap:   true,
	}
	m.input.CharLimit = 256
	m.detailVP = viewport.New(80, 20)
	m.store.Subscribe(func() {
		logx.Infof("store: source updated, %d entries", m.store.Count())
	})
	m.engine.Subscribe(func() { m.lastMsg = "" })
	return m
}

func Run(ctx context.Context, cfg *config.Config) error {
	m := initialModel(ctx, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok && fm.loadErr != "" {
		return errors.New(fm.loadErr)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd is the one asynchronous boundary: it materializes the full entry
// sequence off the event loop. Until loadedMsg arrives the engine stays
// Unloaded and every operation is rejected, so nothing reads a partially
// populated store.
func (m *Model) loadCmd() tea.Cmd {
	src := ingest.SourceFile
	if m.cfg.UseStdin {
		src = ingest.SourceStdin
	}
	opt := ingest.Options{
		Source:      src,
		Path:        m.cfg.FilePath,
		Parser:      parse.New(m.cfg.UseLocalTime),
		ScanBufSize: m.cfg.MaxLineBytes,
	}
	return func() tea.Msg {
		p, err := ingest.NewProvider(opt)
		if err != nil {
			return loadErrMsg{err: err}
		}
		if err := m.store.Load(m.ctx, p); err != nil {
			return loadErrMsg{err: err}
		}
		return loadedMsg{}
	}
}
