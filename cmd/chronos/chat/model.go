// Package chat provides the interactive TUI for Chronos.
package chat

import (
	"context"
	"fmt"

	"chronos/cmd/chronos/ui"
	"chronos/internal/logging"
	"chronos/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// New builds the chat model around cfg.Controller.
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Describe your alternate timeline... (add 'wip' for expansion ideas)"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	// Enter submits; Alt+Enter breaks the line.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	styles := cfg.Styles
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		textarea:   ta,
		viewport:   viewport.New(0, 0),
		spinner:    sp,
		styles:     styles,
		cache:      ui.NewRenderCache(0),
		controller: cfg.Controller,
		modelName:  cfg.ModelName,
		ctx:        ctx,
		logger:     logger,
		hintIndex:  -1,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// handleSubmit starts a send. Rejections are silent and leave the input as typed.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	ex, err := m.controller.Begin(m.textarea.Value())
	if err != nil {
		logging.UIDebug("submit ignored: %v", err)
		return m, nil
	}

	m.textarea.Reset()
	m.hintIndex = -1
	m.layout()
	m.refreshViewport()

	return m, tea.Batch(m.dispatch(ex), m.spinner.Tick)
}

// dispatch runs the completion call off the event loop.
func (m Model) dispatch(ex *session.Exchange) tea.Cmd {
	controller, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return responseMsg{exchange: ex, outcome: controller.Dispatch(ctx, ex)}
	}
}

// cycleHint copies the next welcome hint into the input.
func (m Model) cycleHint() Model {
	m.hintIndex = (m.hintIndex + 1) % len(Hints)
	m.textarea.SetValue(Hints[m.hintIndex])
	m.textarea.CursorEnd()
	return m
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg Config) error {
	if cfg.Controller == nil {
		return fmt.Errorf("chat: controller required")
	}
	logging.UI("starting TUI session %s", cfg.Controller.SessionID())

	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	logging.UI("TUI session %s ended", cfg.Controller.SessionID())
	return nil
}
