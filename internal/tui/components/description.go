package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/dragboard/internal/tui/theme"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// DescriptionLines renders a description into at most maxLines lines.
// With markdown set the text goes through glamour; on any glamour error, or
// without markdown, the raw text is used.
func DescriptionLines(description string, width, maxLines int, markdown bool) []string {
	if maxLines <= 0 {
		return nil
	}
	if strings.TrimSpace(description) == "" {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
		return []string{empty}
	}

	text := description
	if markdown {
		if renderer, err := getRenderer(width); err == nil {
			if rendered, err := renderer.Render(description); err == nil {
				text = rendered
			}
		}
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(stripANSI(line)) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " "))
		if len(lines) == maxLines {
			break
		}
	}
	return lines
}
