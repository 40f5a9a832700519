// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// LaneStyle defines the appearance of a lane
	LaneStyle lipgloss.Style

	// CardStyle defines the appearance of a project card
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (lane names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text such as the people label
	SubtleStyle lipgloss.Style

	// HeaderStyle is the bar across the top of the board
	HeaderStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// HelpBoxStyle defines the style for the help overlay
	HelpBoxStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	theme.Init(colors)

	LaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.LaneBorder)).
		PaddingLeft(laneHPadding).
		PaddingRight(laneHPadding)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		BorderBackground(lipgloss.Color(theme.CardBg)).
		Background(lipgloss.Color(theme.CardBg))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)
}
