package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/board"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/layers"
	"github.com/thenoetrevino/dragboard/internal/tui/notifications"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
	"github.com/thenoetrevino/dragboard/internal/tui/view"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		v.Content = "Loading..."
		return v
	}

	base := m.renderBoard()
	if m.UiState.Mode() != state.HelpMode {
		v.Content = base
		return v
	}

	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if overlay := m.renderHelpLayer(); overlay != nil {
		stack = append(stack, overlay)
	}
	v.Content = lipgloss.NewCanvas(stack...).Render()
	return v
}

// renderBoard draws the header, one lane per status and the status bar
func (m Model) renderBoard() string {
	header := components.HeaderStyle.Render(fmt.Sprintf("dragboard · %d projects", m.Registry.Len()))

	laneViews := make([]string, 0, len(m.Board.Lanes()))
	for i, l := range m.Board.Lanes() {
		laneViews = append(laneViews, components.RenderLane(components.LaneProps{
			Title:        l.Title(),
			Cards:        m.cardsFor(i, l.Element()),
			Droppable:    l.Droppable(),
			Selected:     i == m.UiState.SelectedLane() && !m.session.Active(),
			Width:        m.laneWidth(),
			Height:       m.laneHeight(),
			CardHeight:   m.cardHeight(),
			ScrollOffset: m.UiState.ScrollOffset(i),
		}))
	}
	lanes := lipgloss.JoinHorizontal(lipgloss.Top, laneViews...)

	return lipgloss.JoinVertical(lipgloss.Left, header, lanes, m.renderStatusBar())
}

// cardsFor reads the cards of lane i back out of its element tree
func (m Model) cardsFor(i int, lane *view.Element) []components.CardProps {
	list := lane.MustQuery("ul")
	carried := m.carriedID()

	cards := make([]components.CardProps, 0, len(list.Children()))
	for j, li := range list.Children() {
		cards = append(cards, components.CardProps{
			Title:       li.MustQuery("h2").Text,
			People:      li.MustQuery("h3").Text,
			Description: li.MustQuery("p").Text,
			Selected:    i == m.UiState.SelectedLane() && j == m.UiState.SelectedItem(),
			Carried:     carried != "" && li.ID == carried,
			Markdown:    m.Config.Board.Markdown(),
		})
	}
	return cards
}

func (m Model) renderStatusBar() string {
	var left string
	switch n, ok := m.NotificationState.Latest(); {
	case ok:
		left = notifications.RenderInline(n)
	case m.session.Active():
		left = components.StatusBarStyle.Render(" carrying " + m.carriedTitle() + m.hoverLabel() + " ")
	default:
		left = components.StatusBarStyle.Render(" " + strings.ToUpper(m.UiState.Mode().String()) + " ")
	}

	hint := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.session.Active() {
		hint = m.help.ShortHelpView(m.keys.carryHelp())
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Right: hint,
	})
}

func (m Model) carriedTitle() string {
	if p, ok := m.Registry.Get(m.carriedID()); ok {
		return fmt.Sprintf("%q", p.Title)
	}
	return "project"
}

// hoverLabel names the lane under the carried item and whether it accepts it
func (m Model) hoverLabel() string {
	lane, ok := m.session.Hovered().(*board.ProjectList)
	if !ok {
		return " (not over a lane)"
	}
	if !m.session.Accepted() {
		return " over " + lane.Status().String() + " (rejected)"
	}
	return " over " + lane.Status().String()
}

// renderHelpLayer renders the key binding overview centered over the board
func (m Model) renderHelpLayer() *lipgloss.Layer {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		components.TitleStyle.Render("Keys"),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		components.SubtleStyle.Render("Drag a card with the mouse to move it between lanes."),
		components.SubtleStyle.Render("Press any key to close."),
	)
	return layers.CreateCenteredLayer(components.HelpBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}
