package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// fit truncates s to width cells and right-pads it with spaces to exactly width
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// padLines returns exactly n lines, cutting or appending blank ones
func padLines(lines []string, n, width int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(lines) {
			out = append(out, fit(lines[i], width))
		} else {
			out = append(out, strings.Repeat(" ", max(width, 0)))
		}
	}
	return out
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}
