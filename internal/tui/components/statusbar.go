package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the bottom bar
type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftWidth := lipgloss.Width(props.Left)
	rightWidth := lipgloss.Width(props.Right)

	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, props.Left, gap, props.Right)
}
