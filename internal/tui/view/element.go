// Package view is a small retained element tree the board views build into
// and the terminal renderer reads from. It stands in for the markup layer: a
// view materializes a template, attaches it under a host element, and later
// looks elements up by id or tag.
package view

import "slices"

// Element is a node in the tree
type Element struct {
	ID   string
	Tag  string
	Text string

	classes  []string
	children []*Element
	parent   *Element
}

// NewElement returns a detached element with the given tag
func NewElement(tag string, children ...*Element) *Element {
	e := &Element{Tag: tag}
	for _, c := range children {
		e.Append(c)
	}
	return e
}

// Children returns the direct children in order
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the element this one is attached to, or nil
func (e *Element) Parent() *Element {
	return e.parent
}

// Append attaches child as the last child of e
func (e *Element) Append(child *Element) {
	child.detach()
	child.parent = e
	e.children = append(e.children, child)
}

// Prepend attaches child as the first child of e
func (e *Element) Prepend(child *Element) {
	child.detach()
	child.parent = e
	e.children = append([]*Element{child}, e.children...)
}

// Clear removes every child
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// AddClass adds a class marker; adding an existing class is a no-op
func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass removes a class marker if present
func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

// HasClass reports whether the class marker is set
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Query returns the first descendant with the given tag, depth first, or nil
func (e *Element) Query(tag string) *Element {
	for _, c := range e.children {
		if c.Tag == tag {
			return c
		}
		if found := c.Query(tag); found != nil {
			return found
		}
	}
	return nil
}

// MustQuery is Query for structure the template guarantees. A miss means the
// template and the view disagree, and it panics.
func (e *Element) MustQuery(tag string) *Element {
	found := e.Query(tag)
	if found == nil {
		panic("view: <" + e.Tag + " id=" + e.ID + "> has no <" + tag + "> descendant")
	}
	return found
}

// findByID searches e and its descendants
func (e *Element) findByID(id string) *Element {
	if e.ID == id {
		return e
	}
	for _, c := range e.children {
		if found := c.findByID(id); found != nil {
			return found
		}
	}
	return nil
}
