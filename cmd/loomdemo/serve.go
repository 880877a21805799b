package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/loomterm/compositor/internal/compositor"
	"github.com/loomterm/compositor/internal/geom"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the demo panels in a live, resizable terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			m := newSessionModel(cfg)
			p := tea.NewProgram(m, tea.WithAltScreen())

			if configPath != "" {
				cw, err := watchConfig(configPath, func(c config) {
					p.Send(configChangedMsg{cfg: c})
				})
				if err == nil {
					defer cw.Close()
				}
			}

			_, err = p.Run()
			return err
		},
	}
}

// tickMsg drives the demo's simulated progress so serve has something to
// repaint without a real workload behind it.
type tickMsg time.Time

type configChangedMsg struct{ cfg config }

// sessionModel is the bubbletea model wrapping one Compositor. It owns the
// demo widget tree and reflows or re-renders it in response to messages.
type sessionModel struct {
	cfg   config
	theme theme
	root  *panel

	comp  *compositor.Compositor
	ctx   context.Context
	ticks int

	lastKind  string
	lastSpans int
	err       error
}

func newSessionModel(cfg config) sessionModel {
	t := themeByName(cfg.Theme)
	return sessionModel{
		cfg:   cfg,
		theme: t,
		root:  buildDemoTree(t),
		comp:  compositor.New(),
		ctx:   context.Background(),
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.Width, m.cfg.Height = msg.Width, msg.Height
		m.comp.Reflow(m.root, geom.Size{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil

	case configChangedMsg:
		m.cfg = msg.cfg
		m.theme = themeByName(m.cfg.Theme)
		m.root = buildDemoTree(m.theme)
		m.comp = compositor.New()
		m.comp.Reflow(m.root, geom.Size{Width: m.cfg.Width, Height: m.cfg.Height})
		return m, tick()

	case tickMsg:
		m.ticks++
		m.advanceProgress()
		// bubbletea owns the terminal and redraws from View()'s returned
		// string every frame, so the update's WriteTo (direct cursor moves)
		// would fight its own renderer; RenderUpdate is still called here
		// to pick full vs. partial and report which kind ran.
		update, changed, err := m.comp.RenderUpdate(m.ctx, false, nil)
		m.err = err
		if changed {
			switch u := update.(type) {
			case *compositor.LayoutUpdate:
				m.lastKind, m.lastSpans = "full", len(u.Strips)
			case *compositor.ChopsUpdate:
				spans := 0
				for _, row := range u.Rows {
					spans += len(row.Spans)
				}
				m.lastKind, m.lastSpans = "partial", spans
			}
		}
		return m, tick()
	}
	return m, nil
}

// advanceProgress nudges the footer panel's progress bar and marks it for an
// explicit repaint, exercising the dirty-region path outside of a move or
// resize.
func (m sessionModel) advanceProgress() {
	footer := m.root.children[len(m.root.children)-1]
	if footer.Progress == nil {
		return
	}
	footer.Progress.Current = (footer.Progress.Current + 1) % (footer.Progress.Total + 1)
	m.comp.UpdateWidgets(footer)
}

func (m sessionModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("render error: %v\n", m.err)
	}
	strips, err := m.comp.RenderStrips()
	if err != nil {
		return fmt.Sprintf("render error: %v\n", err)
	}

	var b strings.Builder
	for _, strip := range strips {
		b.WriteString(strip.Render())
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("last update: %s (%d spans) -- q to quit", m.lastKind, m.lastSpans))
	return b.String()
}
