package tui

import (
	"github.com/thenoetrevino/dragboard/internal/tui/components"
)

const (
	headerRows    = 1 // board title across the top
	statusBarRows = 1 // notifications and key hints across the bottom
)

// laneWidth is the total width given to every lane
func (m Model) laneWidth() int {
	n := len(m.Board.Lanes())
	if n == 0 {
		return m.UiState.Width()
	}
	return m.UiState.Width() / n
}

// laneHeight is the total height of every lane, borders included
func (m Model) laneHeight() int {
	return max(m.UiState.Height()-headerRows-statusBarRows, components.LaneOverhead+1)
}

func (m Model) cardHeight() int {
	return m.Config.Board.CardHeight
}

// visibleCards is how many cards a lane shows at once
func (m Model) visibleCards() int {
	return components.VisibleCards(m.laneHeight(), m.cardHeight())
}

// laneIndexAt returns the lane under screen column x, or -1
func (m Model) laneIndexAt(x, y int) int {
	w := m.laneWidth()
	if w <= 0 || x < 0 || y < headerRows || y >= headerRows+m.laneHeight() {
		return -1
	}
	i := x / w
	if i >= len(m.Board.Lanes()) {
		return -1
	}
	return i
}

// itemIndexAt returns the index of the card under screen row y in lane, or
// -1 when the row is not on a card.
func (m Model) itemIndexAt(lane, y int) int {
	l := m.Board.LaneAt(lane)
	if l == nil {
		return -1
	}
	rel := y - headerRows - components.LaneCardTop
	if rel < 0 {
		return -1
	}
	k := rel / m.cardHeight()
	if k >= m.visibleCards() {
		return -1
	}
	idx := m.UiState.ScrollOffset(lane) + k
	if idx >= len(l.Items()) {
		return -1
	}
	return idx
}

// keepSelectionVisible clamps the selection to the selected lane and
// scrolls it into view
func (m Model) keepSelectionVisible() {
	lane := m.Board.LaneAt(m.UiState.SelectedLane())
	if lane == nil {
		return
	}
	n := len(lane.Items())
	m.UiState.ClampItem(n)
	m.UiState.EnsureVisible(m.UiState.SelectedLane(), m.UiState.SelectedItem(), m.visibleCards(), n)
}
