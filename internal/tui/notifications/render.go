package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

type palette struct {
	icon       string
	foreground string
	background string
}

func paletteFor(level state.NotificationLevel) palette {
	switch level {
	case state.LevelWarning:
		return palette{icon: "⚠", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return palette{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return palette{icon: "●", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// RenderInline renders a compact single-line notification for the status bar
func RenderInline(n state.Notification) string {
	p := paletteFor(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.foreground)).
		Background(lipgloss.Color(p.background)).
		Padding(0, 1).
		Render(p.icon + " " + n.Message)
}
