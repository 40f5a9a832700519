package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// LaneProps describes one lane and the cards it shows
type LaneProps struct {
	Title        string
	Cards        []CardProps
	Droppable    bool // the lane's list carries the droppable marker
	Selected     bool
	Width        int // total width, borders included
	Height       int // total height, borders included
	CardHeight   int
	ScrollOffset int // index of the first visible card
}

// VisibleCards returns how many cards fit in a lane of the given height
func VisibleCards(laneHeight, cardHeight int) int {
	if cardHeight <= 0 {
		return 1
	}
	return max((laneHeight-LaneOverhead)/cardHeight, 1)
}

// LaneInnerWidth returns the card width for a lane of the given total width
func LaneInnerWidth(laneWidth int) int {
	return max(laneWidth-laneBorderRows-2*laneHPadding, 1)
}

// RenderLane renders a lane with its header and visible cards
//
// Layout:
//
//	{LANE TITLE} ({count}) ▲▼
//
//	{Card 1}
//	{Card 2}
//	...
func RenderLane(props LaneProps) string {
	inner := LaneInnerWidth(props.Width)
	rows := max(props.Height-laneBorderRows, laneHeaderRows)

	header := fmt.Sprintf("%s (%d)", props.Title, len(props.Cards))
	visible := VisibleCards(props.Height, props.CardHeight)
	start := min(max(props.ScrollOffset, 0), len(props.Cards))
	end := min(start+visible, len(props.Cards))
	if start > 0 {
		header += " ▲"
	}
	if end < len(props.Cards) {
		header += " ▼"
	}

	lines := []string{TitleStyle.Render(fit(header, inner)), ""}
	if len(props.Cards) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No projects"))
	}
	for _, card := range props.Cards[start:end] {
		card.Width = inner
		card.Height = props.CardHeight
		lines = append(lines, strings.Split(RenderCard(card), "\n")...)
	}

	border := theme.LaneBorder
	switch {
	case props.Droppable:
		border = theme.DroppableBorder
	case props.Selected:
		border = theme.SelectedBorder
	}

	return LaneStyle.
		BorderForeground(lipgloss.Color(border)).
		Render(strings.Join(padLines(lines, rows, inner), "\n"))
}
