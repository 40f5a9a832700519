package view

// Template ids for the board views
const (
	ProjectListTemplate   = "project-list"
	SingleProjectTemplate = "single-project"
)

// ClassDroppable marks a list that will accept the current drag
const ClassDroppable = "droppable"

// section > header > h2, ul
func projectListTemplate() *Element {
	return NewElement("section",
		NewElement("header", NewElement("h2")),
		NewElement("ul"),
	)
}

// li > h2, h3, p
func singleProjectTemplate() *Element {
	return NewElement("li",
		NewElement("h2"),
		NewElement("h3"),
		NewElement("p"),
	)
}
