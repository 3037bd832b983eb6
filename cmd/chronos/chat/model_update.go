package chat

import (
	"chronos/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab:
			if len(m.controller.State().Turns) == 0 {
				m = m.cycleHint()
				m.refreshViewport()
			}
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd

		case tea.KeyEnter:
			if !msg.Alt && !msg.Paste {
				return m.handleSubmit()
			}
		}

		m.textarea, tiCmd = m.textarea.Update(msg)
		return m, tiCmd

	case tea.WindowSizeMsg:
		if msg.Width != m.width {
			// Entries are keyed by width; none of the old ones will be hit again.
			m.cache.Clear()
		}
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshViewport()
		return m, nil

	case responseMsg:
		m.controller.Resolve(msg.exchange, msg.outcome)
		if msg.outcome.Err != nil {
			m.logger.Debug("exchange resolved with failure", zap.String("turn_id", msg.exchange.UserTurn.ID))
		}
		logging.UIDebug("exchange %s resolved", msg.exchange.UserTurn.ID)
		m.layout()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.controller.State().Pending {
			var spCmd tea.Cmd
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// layout sizes the viewport and input to the terminal.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	contentWidth := m.width - 4
	if contentWidth < minContentWidth {
		contentWidth = minContentWidth
	}

	banner := 0
	if m.controller.State().LastError != "" {
		banner = errorBannerHeight
	}
	vpHeight := m.height - headerHeight - footerHeight - inputHeight - inputChromeHeight - paddingHeight - banner
	if vpHeight < 1 {
		vpHeight = 1
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = vpHeight
	// border (2) + padding (2)
	m.textarea.SetWidth(contentWidth - 4)
}

// refreshViewport re-renders the conversation and scrolls to the newest turn.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}
