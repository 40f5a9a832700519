package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// CardProps describes one project card
type CardProps struct {
	Title       string
	People      string // the "<n> persons assigned." label
	Description string
	Width       int // total width, borders included
	Height      int // total height, borders included
	Selected    bool
	Carried     bool
	Markdown    bool
}

// RenderCard renders a project card of exactly Height rows
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}             ┃
//	┃ 2 persons assigned. ┃
//	┃ {description...}    ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(props CardProps) string {
	bg := theme.CardBg
	border := theme.CardBorder
	switch {
	case props.Carried:
		bg = theme.CarriedBg
		border = theme.Highlight
	case props.Selected:
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	inner := max(props.Width-cardBorderRows, 1)
	rows := max(props.Height-cardBorderRows, cardFixedRows)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Render(fit(props.Title, inner))

	people := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(fit(props.People, inner))

	lines := []string{title, people}
	lines = append(lines, DescriptionLines(props.Description, inner, rows-cardFixedRows, props.Markdown)...)
	content := strings.Join(padLines(lines, rows, inner), "\n")

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(content)
}
