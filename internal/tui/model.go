package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/projects"
	"github.com/thenoetrevino/dragboard/internal/tui/board"
	"github.com/thenoetrevino/dragboard/internal/tui/components"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	Board    *board.Board
	Registry *projects.Registry
	Config   *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState

	session *dnd.Session
	keys    keyMap
	help    help.Model
	logger  *slog.Logger
}

// InitialModel creates the TUI model over an already built app.
// The board's lanes have rendered the registry once by the time this runs.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	ui := state.NewUIState()
	ui.SetHoverLane(-1)

	return Model{
		ctx:               ctx,
		Board:             a.Board,
		Registry:          a.Registry,
		Config:            cfg,
		UiState:           ui,
		NotificationState: state.NewNotificationState(),
		session:           &dnd.Session{},
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		logger:            slog.Default(),
	}
}

// Init satisfies tea.Model; the board is already populated
func (m Model) Init() tea.Cmd {
	return nil
}
