package interactive

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the calculator screen
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	TextBright lipgloss.AdaptiveColor
	Text       lipgloss.AdaptiveColor
	TextMuted  lipgloss.AdaptiveColor

	Border    lipgloss.AdaptiveColor
	BorderDim lipgloss.AdaptiveColor
}

// DefaultTheme returns the Tokyo Night inspired palette
func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Secondary: lipgloss.AdaptiveColor{Dark: "#c792ea", Light: "#7847bd"},
		Accent:    lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#007197"},

		Success: lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
		Error:   lipgloss.AdaptiveColor{Dark: "#ff5370", Light: "#f52a65"},

		TextBright: lipgloss.AdaptiveColor{Dark: "#eeffff", Light: "#343b58"},
		Text:       lipgloss.AdaptiveColor{Dark: "#bfc7d5", Light: "#4c505e"},
		TextMuted:  lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},

		Border:    lipgloss.AdaptiveColor{Dark: "#5c6370", Light: "#c4c8da"},
		BorderDim: lipgloss.AdaptiveColor{Dark: "#3e4452", Light: "#dfe1e8"},
	}
}
