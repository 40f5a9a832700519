package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ctx != nil {
		select {
		case <-m.ctx.Done():
			m.session.Cancel()
			return m, tea.Quit
		default:
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.keepSelectionVisible()
		return m, nil

	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.HelpMode:
			return m.handleHelpMode(msg)
		case state.CarryMode:
			return m.handleCarryMode(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.handlePointerDown(mouse.X, mouse.Y)
		}
		return m, nil

	case tea.MouseMotionMsg:
		if m.UiState.PointerDrag() {
			mouse := msg.Mouse()
			m.hover(m.laneIndexAt(mouse.X, mouse.Y))
		}
		return m, nil

	case tea.MouseReleaseMsg:
		if m.UiState.PointerDrag() {
			mouse := msg.Mouse()
			m.hover(m.laneIndexAt(mouse.X, mouse.Y))
			m.finishDrag()
			m.UiState.SetMode(state.NormalMode)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.PrevLane):
		m.selectLane(m.UiState.SelectedLane() - 1)
	case key.Matches(msg, m.keys.NextLane):
		m.selectLane(m.UiState.SelectedLane() + 1)
	case key.Matches(msg, m.keys.PrevItem):
		m.UiState.SetSelectedItem(m.UiState.SelectedItem() - 1)
		m.keepSelectionVisible()
	case key.Matches(msg, m.keys.NextItem):
		m.UiState.SetSelectedItem(m.UiState.SelectedItem() + 1)
		m.keepSelectionVisible()
	case key.Matches(msg, m.keys.Grab):
		if m.beginDrag(m.UiState.SelectedLane(), m.UiState.SelectedItem()) {
			m.UiState.SetMode(state.CarryMode)
		} else {
			m.NotificationState.Add(state.LevelWarning, "Nothing to grab in this lane")
		}
	}
	return m, nil
}

func (m Model) handleCarryMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelDrag()
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevLane):
		m.hover(max(m.UiState.HoverLane()-1, 0))
	case key.Matches(msg, m.keys.NextLane):
		m.hover(min(m.UiState.HoverLane()+1, len(m.Board.Lanes())-1))
	case key.Matches(msg, m.keys.Drop), key.Matches(msg, m.keys.Grab):
		m.finishDrag()
		m.UiState.SetMode(state.NormalMode)
	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag()
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode closes the help overlay on any key except ctrl+c
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// handlePointerDown grabs the card under the pointer, or selects the lane
// when the pointer is on empty lane space
func (m Model) handlePointerDown(x, y int) {
	if m.UiState.Mode() == state.HelpMode {
		m.UiState.SetMode(state.NormalMode)
		return
	}
	if m.session.Active() {
		m.cancelDrag()
	}

	lane := m.laneIndexAt(x, y)
	if lane < 0 {
		m.UiState.SetMode(state.NormalMode)
		return
	}

	if item := m.itemIndexAt(lane, y); item >= 0 && m.beginDrag(lane, item) {
		m.UiState.SetPointerDrag(true)
		m.UiState.SetMode(state.CarryMode)
		return
	}
	m.UiState.SetMode(state.NormalMode)
	m.selectLane(lane)
}

func (m Model) selectLane(i int) {
	if i < 0 || i >= len(m.Board.Lanes()) {
		return
	}
	m.UiState.SetSelectedLane(i)
	m.keepSelectionVisible()
}
