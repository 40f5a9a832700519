package models

import "fmt"

// Project represents a single unit of work tracked on the board.
// ID, Title, Description and People are fixed at creation; Status is the only
// field that changes, and only through the registry's move operation.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      ProjectStatus
}

// Persons returns the people-count label for this project
func (p *Project) Persons() string {
	return Persons(p.People)
}

// Clone returns an independent copy of the project
func (p *Project) Clone() *Project {
	cp := *p
	return &cp
}

// Persons formats a people count: exactly 1 is singular, everything else plural.
func Persons(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", n)
}
