package board

import (
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/projects"
	"github.com/thenoetrevino/dragboard/internal/tui/view"
)

// Board wires one lane per status to a shared registry and document
type Board struct {
	doc      *view.Document
	registry *projects.Registry
	lanes    []*ProjectList
}

// New builds the document and the lanes in models.Statuses() order
func New(registry *projects.Registry, logger *slog.Logger) (*Board, error) {
	b := &Board{
		doc:      view.NewDocument(),
		registry: registry,
	}
	for _, status := range models.Statuses() {
		lane, err := NewProjectList(b.doc, registry, status, logger)
		if err != nil {
			return nil, err
		}
		b.lanes = append(b.lanes, lane)
	}
	return b, nil
}

// Registry returns the registry the lanes are subscribed to
func (b *Board) Registry() *projects.Registry {
	return b.registry
}

// Lanes returns the lanes in display order
func (b *Board) Lanes() []*ProjectList {
	return b.lanes
}

// LaneAt returns the lane at display index i, or nil when out of range
func (b *Board) LaneAt(i int) *ProjectList {
	if i < 0 || i >= len(b.lanes) {
		return nil
	}
	return b.lanes[i]
}

// Lane returns the lane bound to status, or nil
func (b *Board) Lane(status models.ProjectStatus) *ProjectList {
	for _, l := range b.lanes {
		if l.status == status {
			return l
		}
	}
	return nil
}

// LaneIndex returns the display index of the lane bound to status, or -1
func (b *Board) LaneIndex(status models.ProjectStatus) int {
	for i, l := range b.lanes {
		if l.status == status {
			return i
		}
	}
	return -1
}

// ItemByID returns the card currently showing the project with id
func (b *Board) ItemByID(id string) *ProjectItem {
	for _, l := range b.lanes {
		for _, item := range l.items {
			if item.project.ID == id {
				return item
			}
		}
	}
	return nil
}
