package view

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound is returned when attaching an unregistered template
	ErrTemplateNotFound = errors.New("template not found")
	// ErrHostNotFound is returned when the host id does not resolve
	ErrHostNotFound = errors.New("host element not found")
)

// AppHostID is the id of the root container views attach under
const AppHostID = "app"

// Template builds a fresh detached fragment
type Template func() *Element

// Document owns the element tree and the template registry
type Document struct {
	root      *Element
	templates map[string]Template
}

// NewDocument returns a document with an empty "app" host and the built-in
// board templates registered
func NewDocument() *Document {
	app := NewElement("div")
	app.ID = AppHostID

	d := &Document{
		root:      NewElement("body", app),
		templates: map[string]Template{},
	}
	d.RegisterTemplate(ProjectListTemplate, projectListTemplate)
	d.RegisterTemplate(SingleProjectTemplate, singleProjectTemplate)
	return d
}

// Root returns the top of the tree
func (d *Document) Root() *Element {
	return d.root
}

// RegisterTemplate adds or replaces a template
func (d *Document) RegisterTemplate(id string, t Template) {
	d.templates[id] = t
}

// GetElementByID returns the attached element with the given id, or nil
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	return d.root.findByID(id)
}

// Attach materializes templateID, optionally gives it elementID, and inserts
// it into the element identified by hostID: first when insertAtStart is set,
// last otherwise. The attached element is returned.
func (d *Document) Attach(templateID, hostID string, insertAtStart bool, elementID string) (*Element, error) {
	tmpl, ok := d.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("attach %q: %w", templateID, ErrTemplateNotFound)
	}
	host := d.GetElementByID(hostID)
	if host == nil {
		return nil, fmt.Errorf("attach %q into %q: %w", templateID, hostID, ErrHostNotFound)
	}
	return d.attach(tmpl, host, insertAtStart, elementID), nil
}

// AttachTo is Attach with the host given directly instead of looked up by id
func (d *Document) AttachTo(templateID string, host *Element, insertAtStart bool, elementID string) (*Element, error) {
	tmpl, ok := d.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("attach %q: %w", templateID, ErrTemplateNotFound)
	}
	if host == nil {
		return nil, fmt.Errorf("attach %q: %w", templateID, ErrHostNotFound)
	}
	return d.attach(tmpl, host, insertAtStart, elementID), nil
}

func (d *Document) attach(tmpl Template, host *Element, insertAtStart bool, elementID string) *Element {
	el := tmpl()
	if elementID != "" {
		el.ID = elementID
	}
	if insertAtStart {
		host.Prepend(el)
	} else {
		host.Append(el)
	}
	return el
}
