package chat

import (
	"strings"

	"chronos/cmd/chronos/ui"
	"chronos/internal/articulation"
	"chronos/internal/conversation"
	"chronos/internal/session"
	"chronos/internal/usage"

	"github.com/charmbracelet/lipgloss"
)

const (
	pendingStatus = "Calculating butterfly effects..."
	idleStatus    = "Timeline Stable"
	wipIndicator  = "✦ Expansion Mode Enabled"
	wipBadge      = "WIP Scenario"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	state := m.controller.State()

	content := m.viewport.View()
	if state.LastError != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderErrorBanner(state.LastError))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(state),
		m.styles.Content.Render(content),
		m.styles.Input.Render(m.textarea.View()),
		m.renderFooter(),
	)
}

func (m Model) renderHeader(state session.State) string {
	title := m.styles.Header.Render(" Chronos ")
	subtitle := m.styles.Subtitle.Render(" Alternate History Lab")

	var status string
	if state.Pending {
		status = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", m.styles.Badge.Render(pendingStatus))
	} else {
		status = m.styles.Success.Render("● " + idleStatus)
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, subtitle, "  ", status)
	return lipgloss.JoinVertical(lipgloss.Left, headerLine, "", m.styles.RenderDivider(m.width))
}

func (m Model) renderFooter() string {
	left := "Mention wip anywhere to unlock expansion seeds"
	if m.modelName != "" {
		left += " | " + m.modelName
	}
	if tracker := usage.FromContext(m.ctx); tracker != nil {
		if summary := tracker.Summary(); summary != "" {
			left += " | " + summary
		}
	}
	help := left + " | Enter: send | Alt+Enter: newline | Esc: quit"

	if conversation.IsExpansionRequest(m.textarea.Value()) {
		help = lipgloss.JoinHorizontal(lipgloss.Center, help, "  ", m.styles.Warning.Render(wipIndicator))
	}
	return m.styles.Footer.Render(help)
}

func (m Model) renderErrorBanner(text string) string {
	return m.styles.ErrorBanner.Width(m.viewport.Width).Render(text)
}

// renderHistory renders the welcome screen or the conversation.
func (m Model) renderHistory() string {
	turns := m.controller.State().Turns
	if len(turns) == 0 {
		return m.renderWelcome()
	}

	var sb strings.Builder
	for _, turn := range turns {
		rendered := m.cache.GetOrCompute(m.cacheKey(turn), func() string {
			return m.renderTurn(turn)
		})
		if rendered == "" {
			continue
		}
		sb.WriteString(rendered)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m Model) cacheKey(turn conversation.Turn) string {
	return ui.TurnKey(turn.ID, m.viewport.Width, m.styles.Theme.IsDark)
}

// renderTurn is the per-role view of a single turn.
func (m Model) renderTurn(turn conversation.Turn) string {
	width := m.bodyWidth()
	stamp := m.styles.Timestamp.Render(turn.CreatedAt.Format("15:04"))

	switch turn.Role {
	case conversation.RoleUser:
		label := m.styles.UserLabel.Render("You")
		if turn.IsExpansionRequest {
			label = lipgloss.JoinHorizontal(lipgloss.Center, label, " ", m.styles.WipBadge.Render(wipBadge))
		}
		header := lipgloss.JoinHorizontal(lipgloss.Center, label, "  ", stamp)
		body := m.styles.UserInput.Width(width).Render(turn.Content)
		return lipgloss.JoinVertical(lipgloss.Left, header, body)

	case conversation.RoleAssistant:
		header := lipgloss.JoinHorizontal(lipgloss.Center, m.styles.AssistantLabel.Render("Chronos"), "  ", stamp)
		return lipgloss.JoinVertical(lipgloss.Left, header, m.renderArticulated(articulation.Format(turn.Content), width))

	default:
		return ""
	}
}

// renderArticulated draws the main analysis and, when present, the seeds block.
func (m Model) renderArticulated(a articulation.Articulated, width int) string {
	blocks := []string{}
	if len(a.Main) > 0 {
		blocks = append(blocks, m.styles.AgentResponse.Width(width).Render(strings.Join(a.Main, "\n")))
	}
	if !a.HasExpansion() {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	seeds := []string{m.styles.SeedsTitle.Render("✦ " + articulation.ExpansionTitle)}
	for _, seed := range a.Expansion {
		seeds = append(seeds, m.styles.Seed.Width(width-6).Render(seed))
	}
	blocks = append(blocks, m.styles.SeedsBlock.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, seeds...)))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) renderWelcome() string {
	width := m.bodyWidth()

	intro := m.styles.Body.Width(width).Render(
		"Provide a point of divergence in history. Use " +
			m.styles.Warning.Render(`"wip"`) +
			" in your message if you want ideas to expand your timeline.")

	hints := make([]string, 0, len(Hints))
	for i, hint := range Hints {
		style := m.styles.Hint
		if i == m.hintIndex {
			style = m.styles.HintSelected
		}
		hints = append(hints, style.Width(width).Render(hint))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render("Begin Divergence"),
		intro,
		"",
		lipgloss.JoinVertical(lipgloss.Left, hints...),
		m.styles.Muted.Render("Tab: use a suggestion"),
	)
}

func (m Model) bodyWidth() int {
	w := m.viewport.Width - 2
	if w < minContentWidth {
		w = minContentWidth
	}
	return w
}
