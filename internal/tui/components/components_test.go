package components

import (
	"os"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
)

func TestMain(m *testing.M) {
	InitStyles(*colors.Default())
	os.Exit(m.Run())
}

func TestRenderCard_FixedSize(t *testing.T) {
	tests := []struct {
		name string
		card CardProps
	}{
		{"no description", CardProps{Title: "Build site", People: "1 person assigned.", Width: 30, Height: 6}},
		{"long description", CardProps{Title: "Build site", People: "2 persons assigned.", Description: "one\ntwo\nthree\nfour", Width: 30, Height: 6}},
		{"minimum height", CardProps{Title: "x", People: "0 persons assigned.", Description: "d", Width: 20, Height: 4}},
		{"long title", CardProps{Title: strings.Repeat("very long title ", 10), People: "p", Width: 24, Height: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderCard(tt.card)
			if got := lipgloss.Height(out); got != tt.card.Height {
				t.Errorf("height = %d, want %d", got, tt.card.Height)
			}
			if got := lipgloss.Width(out); got != tt.card.Width {
				t.Errorf("width = %d, want %d", got, tt.card.Width)
			}
		})
	}
}

func TestRenderCard_Content(t *testing.T) {
	out := RenderCard(CardProps{
		Title:       "Build site",
		People:      "2 persons assigned.",
		Description: "landing page",
		Width:       40,
		Height:      6,
	})

	for _, want := range []string{"Build site", "2 persons assigned.", "landing page"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderCard() missing %q in:\n%s", want, out)
		}
	}
}

func TestDescriptionLines_Plain(t *testing.T) {
	lines := DescriptionLines("first\n\nsecond\nthird", 20, 2, false)

	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("DescriptionLines() = %q, want [first second]", lines)
	}
}

func TestDescriptionLines_Empty(t *testing.T) {
	lines := DescriptionLines("   ", 20, 2, true)
	if len(lines) != 1 || !strings.Contains(lines[0], "No description") {
		t.Errorf("DescriptionLines(empty) = %q, want placeholder", lines)
	}
	if got := DescriptionLines("text", 20, 0, false); got != nil {
		t.Errorf("DescriptionLines(maxLines=0) = %q, want nil", got)
	}
}

func TestDescriptionLines_MarkdownKeepsText(t *testing.T) {
	lines := DescriptionLines("**bold** words", 30, 3, true)
	if len(lines) == 0 {
		t.Fatal("DescriptionLines(markdown) returned nothing")
	}
	joined := stripANSI(strings.Join(lines, " "))
	if !strings.Contains(joined, "bold") || strings.Contains(joined, "**") {
		t.Errorf("markdown not rendered: %q", joined)
	}
}

func TestVisibleCards(t *testing.T) {
	tests := []struct {
		laneHeight, cardHeight, want int
	}{
		{30, 6, 4},
		{10, 6, 1},
		{2, 6, 1},
		{16, 6, 2},
		{10, 0, 1},
	}
	for _, tt := range tests {
		if got := VisibleCards(tt.laneHeight, tt.cardHeight); got != tt.want {
			t.Errorf("VisibleCards(%d, %d) = %d, want %d", tt.laneHeight, tt.cardHeight, got, tt.want)
		}
	}
}

func TestRenderLane_HeaderAndSize(t *testing.T) {
	cards := []CardProps{
		{Title: "a", People: "1 person assigned."},
		{Title: "b", People: "2 persons assigned."},
		{Title: "c", People: "3 persons assigned."},
	}
	out := RenderLane(LaneProps{
		Title:      "ACTIVE PROJECTS",
		Cards:      cards,
		Width:      40,
		Height:     16,
		CardHeight: 6,
	})

	if !strings.Contains(out, "ACTIVE PROJECTS (3)") {
		t.Errorf("RenderLane() missing header with count:\n%s", out)
	}
	if !strings.Contains(out, "▼") {
		t.Error("RenderLane() should show a more-below marker when cards overflow")
	}
	if strings.Contains(out, "▲") {
		t.Error("RenderLane() should not show a more-above marker at offset 0")
	}
	if got := lipgloss.Height(out); got != 16 {
		t.Errorf("lane height = %d, want 16", got)
	}
	if got := lipgloss.Width(out); got != 40 {
		t.Errorf("lane width = %d, want 40", got)
	}
}

func TestRenderLane_Scrolled(t *testing.T) {
	cards := []CardProps{{Title: "first"}, {Title: "second"}, {Title: "third"}}
	out := RenderLane(LaneProps{
		Title:        "FINISHED PROJECTS",
		Cards:        cards,
		Width:        30,
		Height:       10,
		CardHeight:   6,
		ScrollOffset: 2,
	})

	if !strings.Contains(out, "third") {
		t.Errorf("scrolled lane should show the third card:\n%s", out)
	}
	if strings.Contains(out, "first") {
		t.Error("scrolled lane should not show the first card")
	}
	if !strings.Contains(out, "▲") {
		t.Error("scrolled lane should show a more-above marker")
	}
}

func TestRenderLane_Empty(t *testing.T) {
	out := RenderLane(LaneProps{Title: "FINISHED PROJECTS", Width: 30, Height: 10, CardHeight: 6})
	if !strings.Contains(out, "No projects") {
		t.Errorf("empty lane should show placeholder:\n%s", out)
	}
	if !strings.Contains(out, "FINISHED PROJECTS (0)") {
		t.Error("empty lane should show a zero count")
	}
}

func TestRenderStatusBar_FillsWidth(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 50, Left: "left", Right: "right"})
	if got := lipgloss.Width(out); got != 50 {
		t.Errorf("status bar width = %d, want 50", got)
	}
	if !strings.HasPrefix(stripANSI(out), "left") || !strings.HasSuffix(stripANSI(out), "right") {
		t.Errorf("status bar = %q, want left...right", stripANSI(out))
	}
}
