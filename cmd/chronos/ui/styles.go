// Package ui provides the visual styling for the Chronos interactive CLI.
// Indigo marks the user, slate the historian, amber the expansion seeds.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f8fafc") // slate-50
	LightForeground = lipgloss.Color("#0f172a") // slate-900
	LightPrimary    = lipgloss.Color("#4338ca") // indigo-700
	LightSecondary  = lipgloss.Color("#e2e8f0") // slate-200
	LightMuted      = lipgloss.Color("#64748b") // slate-500
	LightBorder     = lipgloss.Color("#cbd5e1") // slate-300
	LightSeed       = lipgloss.Color("#b45309") // amber-700

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0f172a") // slate-900
	DarkForeground = lipgloss.Color("#e2e8f0") // slate-200
	DarkPrimary    = lipgloss.Color("#818cf8") // indigo-400
	DarkSecondary  = lipgloss.Color("#1e293b") // slate-800
	DarkMuted      = lipgloss.Color("#94a3b8") // slate-400
	DarkBorder     = lipgloss.Color("#334155") // slate-700
	DarkSeed       = lipgloss.Color("#fbbf24") // amber-400

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#ef4444") // red-500
	Success     = lipgloss.Color("#22c55e") // green-500
	Amber       = lipgloss.Color("#f59e0b") // amber-500
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Seed       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Seed:       LightSeed,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Seed:       DarkSeed,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or CHRONOS_DARK_MODE=1,
// otherwise light.
func DetectTheme() Theme {
	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}

	if os.Getenv("CHRONOS_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Conversation
	UserLabel      lipgloss.Style
	UserInput      lipgloss.Style
	AssistantLabel lipgloss.Style
	AgentResponse  lipgloss.Style
	SeedsBlock     lipgloss.Style
	SeedsTitle     lipgloss.Style
	Seed           lipgloss.Style
	Timestamp      lipgloss.Style
	Hint           lipgloss.Style
	HintSelected   lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Components
	Input       lipgloss.Style
	Spinner     lipgloss.Style
	Divider     lipgloss.Style
	Badge       lipgloss.Style
	WipBadge    lipgloss.Style
	ErrorBanner lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		UserLabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary),

		AssistantLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		AgentResponse: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		SeedsBlock: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(0, 1).
			MarginTop(1),

		SeedsTitle: lipgloss.NewStyle().
			Foreground(theme.Seed).
			Bold(true),

		Seed: lipgloss.NewStyle().
			Foreground(theme.Seed).
			Italic(true).
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Amber),

		Timestamp: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Faint(true),

		Hint: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		HintSelected: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Foreground).
			Padding(0, 1),

		WipBadge: lipgloss.NewStyle().
			Background(Amber).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Bold(true),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(Destructive).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Destructive).
			Padding(0, 1).
			Align(lipgloss.Center),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 0 {
		width = 0
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
