package tui

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/tui/board"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// beginDrag grabs the item at (lane, item) and hovers it over its own lane.
// Returns false when there is no such item.
func (m Model) beginDrag(lane, item int) bool {
	l := m.Board.LaneAt(lane)
	if l == nil || item < 0 || item >= len(l.Items()) {
		return false
	}

	m.UiState.Select(lane, item)
	m.session.Begin(l.Items()[item])
	m.hover(lane)

	m.logger.Debug("drag started", "project_id", m.carriedID(), "lane", l.Status())
	return true
}

// hover moves the carried item over lane; -1 moves it off every lane
func (m Model) hover(lane int) {
	if !m.session.Active() {
		return
	}
	l := m.Board.LaneAt(lane)
	if l == nil {
		m.session.Leave()
		m.UiState.SetHoverLane(-1)
		return
	}
	m.session.Over(l)
	m.UiState.SetHoverLane(lane)
}

// finishDrag releases the carried item over the hovered lane
func (m Model) finishDrag() {
	if !m.session.Active() {
		return
	}

	id := m.carriedID()
	before, _ := m.Board.Registry().Get(id)
	res := m.session.Release()
	m.UiState.SetPointerDrag(false)
	m.UiState.SetHoverLane(-1)

	if !res.Dropped {
		m.NotificationState.Add(state.LevelWarning, "Drop cancelled: not over a lane")
		m.followProject(id)
		return
	}

	target, ok := res.Target.(*board.ProjectList)
	switch {
	case !ok || before == nil:
		m.NotificationState.Add(state.LevelError, "Dropped an unknown project")
	case before.Status == target.Status():
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("%q is already in %s", before.Title, target.Status()))
	default:
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved %q to %s", before.Title, target.Status()))
		m.logger.Info("project moved", "project_id", id, "from", before.Status, "to", target.Status())
	}
	m.followProject(id)
}

// cancelDrag abandons the carried item where it was
func (m Model) cancelDrag() {
	if !m.session.Active() {
		return
	}
	id := m.carriedID()
	m.session.Cancel()
	m.UiState.SetPointerDrag(false)
	m.UiState.SetHoverLane(-1)
	m.NotificationState.Add(state.LevelInfo, "Drag cancelled")
	m.followProject(id)
}

// carriedID returns the id on the drag payload, or "" when idle
func (m Model) carriedID() string {
	t := m.session.Transfer()
	if t == nil {
		return ""
	}
	return t.GetData(dnd.MediaTypeText)
}

// followProject selects the card showing project id, wherever it now lives
func (m Model) followProject(id string) {
	for i, l := range m.Board.Lanes() {
		for j, item := range l.Items() {
			if item.Project().ID == id {
				m.UiState.Select(i, j)
				m.keepSelectionVisible()
				return
			}
		}
	}
	m.keepSelectionVisible()
}
