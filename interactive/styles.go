package interactive

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the calculator screen.
type Styles struct {
	theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Subtle   lipgloss.Style
	Prompt   lipgloss.Style
	Accepted lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Divider  lipgloss.Style
	Formula  lipgloss.Style
	Panel    lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles creates a new Styles instance using the DefaultTheme
func NewStyles() *Styles {
	return NewStylesWithTheme(DefaultTheme())
}

// NewStylesWithTheme creates styles using a specific theme
func NewStylesWithTheme(theme Theme) *Styles {
	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.TextBright),

		Accepted: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(theme.Accent),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Divider: lipgloss.NewStyle().
			Foreground(theme.BorderDim),

		Formula: lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(theme.Text),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		HelpDesc: lipgloss.NewStyle().
			Foreground(theme.TextMuted),
	}
}
