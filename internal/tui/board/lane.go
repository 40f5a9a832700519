// Package board holds the two view types of the board: ProjectList, one per
// lane, and ProjectItem, one per card. Both write into a view.Document and
// speak the dnd protocol; neither keeps state that outlives a registry
// notification.
package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/projects"
	"github.com/thenoetrevino/dragboard/internal/tui/view"
)

// DragState is a lane's drag interaction state
type DragState int

const (
	Idle DragState = iota
	DragOver
)

func (s DragState) String() string {
	if s == DragOver {
		return "dragover"
	}
	return "idle"
}

// ProjectList is the lane view for one status. It re-renders from every
// registry notification and turns drops into registry moves.
type ProjectList struct {
	status   models.ProjectStatus
	doc      *view.Document
	registry *projects.Registry
	element  *view.Element
	logger   *slog.Logger

	assignedProjects []*models.Project
	items            []*ProjectItem
	state            DragState
}

var _ dnd.DragTarget = (*ProjectList)(nil)

// ElementID returns the id of a lane's root element
func ElementID(status models.ProjectStatus) string {
	return status.String() + "-projects"
}

// ListID returns the id of a lane's list container
func ListID(status models.ProjectStatus) string {
	return status.String() + "-projects-list"
}

// NewProjectList attaches a lane for status under the app host, subscribes
// it to the registry and renders the registry's current projects once.
func NewProjectList(doc *view.Document, registry *projects.Registry, status models.ProjectStatus, logger *slog.Logger) (*ProjectList, error) {
	el, err := doc.Attach(view.ProjectListTemplate, view.AppHostID, false, ElementID(status))
	if err != nil {
		return nil, fmt.Errorf("create %s lane: %w", status, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	l := &ProjectList{
		status:   status,
		doc:      doc,
		registry: registry,
		element:  el,
		logger:   logger,
	}
	l.configure()
	l.renderContent()
	l.update(registry.Projects())
	return l, nil
}

// Status returns the status this lane is bound to
func (l *ProjectList) Status() models.ProjectStatus {
	return l.status
}

// Title returns the lane header text
func (l *ProjectList) Title() string {
	return l.element.MustQuery("h2").Text
}

// Element returns the lane's root element
func (l *ProjectList) Element() *view.Element {
	return l.element
}

// AssignedProjects returns the projects shown in this lane as of the last
// notification
func (l *ProjectList) AssignedProjects() []*models.Project {
	return l.assignedProjects
}

// Items returns the cards built by the last render
func (l *ProjectList) Items() []*ProjectItem {
	return l.items
}

// State returns the current drag interaction state
func (l *ProjectList) State() DragState {
	return l.state
}

// Droppable reports whether the list carries the droppable marker
func (l *ProjectList) Droppable() bool {
	return l.listElement().HasClass(view.ClassDroppable)
}

// DragOverHandler accepts the drag only when the first offered type is text
func (l *ProjectList) DragOverHandler(e *dnd.DragEvent) {
	if e.Transfer == nil || e.Transfer.FirstType() != dnd.MediaTypeText {
		return
	}
	e.PreventDefault()
	l.listElement().AddClass(view.ClassDroppable)
	l.state = DragOver
}

// DropHandler moves the dragged project into this lane
func (l *ProjectList) DropHandler(e *dnd.DragEvent) {
	l.listElement().RemoveClass(view.ClassDroppable)
	l.state = Idle
	if e.Transfer == nil {
		return
	}

	id := e.Transfer.GetData(dnd.MediaTypeText)
	if !l.registry.MoveProject(id, l.status) {
		l.logger.Debug("drop did not move project", "project_id", id, "lane", l.status)
	}
}

// DragLeaveHandler clears the droppable marker
func (l *ProjectList) DragLeaveHandler(*dnd.DragEvent) {
	l.listElement().RemoveClass(view.ClassDroppable)
	l.state = Idle
}

func (l *ProjectList) configure() {
	l.registry.AddListener(l.update)
}

func (l *ProjectList) update(all []*models.Project) {
	relevant := make([]*models.Project, 0, len(all))
	for _, p := range all {
		if p.Status == l.status {
			relevant = append(relevant, p)
		}
	}
	l.assignedProjects = relevant
	l.renderProjects()
}

func (l *ProjectList) renderContent() {
	l.element.MustQuery("ul").ID = ListID(l.status)
	l.element.MustQuery("h2").Text = strings.ToUpper(l.status.String()) + " PROJECTS"
}

// renderProjects clears the list and rebuilds one card per assigned project
func (l *ProjectList) renderProjects() {
	list := l.listElement()
	list.Clear()

	l.items = make([]*ProjectItem, 0, len(l.assignedProjects))
	for _, p := range l.assignedProjects {
		item, err := NewProjectItem(l.doc, list, p)
		if err != nil {
			panic(err)
		}
		l.items = append(l.items, item)
	}
}

func (l *ProjectList) listElement() *view.Element {
	return l.element.MustQuery("ul")
}
