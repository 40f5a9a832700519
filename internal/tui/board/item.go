package board

import (
	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/view"
)

// ProjectItem renders one project card and acts as a drag source.
// It is rebuilt from scratch on every lane re-render.
type ProjectItem struct {
	project *models.Project
	element *view.Element
}

var _ dnd.Draggable = (*ProjectItem)(nil)

// NewProjectItem attaches a card for project to the end of list
func NewProjectItem(doc *view.Document, list *view.Element, project *models.Project) (*ProjectItem, error) {
	el, err := doc.AttachTo(view.SingleProjectTemplate, list, false, project.ID)
	if err != nil {
		return nil, err
	}

	item := &ProjectItem{project: project, element: el}
	item.renderContent()
	return item, nil
}

// Project returns the project this card shows
func (i *ProjectItem) Project() *models.Project {
	return i.project
}

// Element returns the card's root element
func (i *ProjectItem) Element() *view.Element {
	return i.element
}

// DragStartHandler puts the project id on the payload and offers a move
func (i *ProjectItem) DragStartHandler(e *dnd.DragEvent) {
	e.Transfer.SetData(dnd.MediaTypeText, i.project.ID)
	e.Transfer.EffectAllowed = dnd.EffectMove
}

// DragEndHandler does nothing: the card is rebuilt on the next notification.
func (i *ProjectItem) DragEndHandler(*dnd.DragEvent) {}

func (i *ProjectItem) renderContent() {
	i.element.MustQuery("h2").Text = i.project.Title
	i.element.MustQuery("h3").Text = i.project.Persons() + " assigned."
	i.element.MustQuery("p").Text = i.project.Description
}
