package chat

import (
	"context"

	"chronos/cmd/chronos/ui"
	"chronos/internal/session"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"
)

const (
	headerHeight      = 3
	footerHeight      = 2
	inputHeight       = 3
	inputChromeHeight = 2 // border
	errorBannerHeight = 3
	paddingHeight     = 2
	minContentWidth   = 20
)

// Hints are the suggested openings shown on the welcome screen.
var Hints = []string{
	"What if the Library of Alexandria never burned? wip",
	"What if the Central Powers won WWI?",
	"What if Rome industrialised early? wip",
	"What if the Space Race never ended?",
}

// Config holds configuration for initializing the chat interface.
type Config struct {
	// Controller owns the conversation. Required.
	Controller *session.Controller

	// ModelName is shown in the footer.
	ModelName string

	Styles ui.Styles

	// Context is passed to every completion dispatch. Defaults to Background.
	Context context.Context

	Logger *zap.Logger
}

// Model is the main model for the interactive chat interface
type Model struct {
	// UI Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	cache    *ui.RenderCache

	controller *session.Controller
	modelName  string
	ctx        context.Context
	logger     *zap.Logger

	width  int
	height int
	ready  bool

	// hintIndex is the welcome hint last copied into the input, -1 for none.
	hintIndex int
}

// responseMsg carries a dispatched exchange back to the event loop.
type responseMsg struct {
	exchange *session.Exchange
	outcome  session.Outcome
}
