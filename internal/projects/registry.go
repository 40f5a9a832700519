// Package projects owns the authoritative list of board projects.
//
// The Registry is the only place a project is created or changes lane. Every
// committed mutation is followed by a synchronous fan-out of the full project
// list to every listener, in the order the listeners were added. Views keep
// nothing but what they derive from the latest snapshot.
//
// A Registry is not safe for concurrent use. It lives on the Bubble Tea update
// goroutine, which runs one message to completion before the next.
package projects

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/dragboard/internal/models"
)

// Listener receives the complete, ordered project list after a mutation.
// Each listener gets its own copy, so changes it makes are not seen by the
// registry or by other listeners.
type Listener func(projects []*models.Project)

// Registry holds projects in insertion order and notifies listeners on change
type Registry struct {
	projects  []*models.Project
	listeners []Listener
	newID     func() string
	logger    *slog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for mutation tracing
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithIDGenerator replaces the default UUID generator.
// The generator must never return the same value twice.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		r.newID = fn
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddListener subscribes fn to every future mutation.
// The current state is not replayed; callers that need an initial population
// read Projects() themselves.
func (r *Registry) AddListener(fn Listener) {
	r.listeners = append(r.listeners, fn)
}

// AddProject appends a new active project and notifies all listeners.
// No validation is done here; form capture is the caller's job.
func (r *Registry) AddProject(title, description string, people int) *models.Project {
	p := &models.Project{
		ID:          r.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      models.StatusActive,
	}
	r.projects = append(r.projects, p)

	r.logger.Debug("project added", "project_id", p.ID, "title", p.Title)
	r.notify()

	return p.Clone()
}

// MoveProject changes the status of the project with the given id.
// Unknown ids and moves to the project's current status are silent no-ops
// that do not notify. Reports whether a mutation happened.
func (r *Registry) MoveProject(id string, status models.ProjectStatus) bool {
	p := r.find(id)
	if p == nil {
		r.logger.Debug("move ignored: unknown project", "project_id", id)
		return false
	}
	if p.Status == status {
		return false
	}

	from := p.Status
	p.Status = status

	r.logger.Debug("project moved", "project_id", id, "from", from, "to", status)
	r.notify()

	return true
}

// Projects returns a snapshot of all projects in insertion order
func (r *Registry) Projects() []*models.Project {
	return r.snapshot()
}

// Get returns a copy of the project with the given id
func (r *Registry) Get(id string) (*models.Project, bool) {
	p := r.find(id)
	if p == nil {
		return nil, false
	}
	return p.Clone(), true
}

// Len returns the number of projects
func (r *Registry) Len() int {
	return len(r.projects)
}

func (r *Registry) find(id string) *models.Project {
	for _, p := range r.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Registry) snapshot() []*models.Project {
	out := make([]*models.Project, len(r.projects))
	for i, p := range r.projects {
		out[i] = p.Clone()
	}
	return out
}

// notify hands every listener its own fresh snapshot.
// A panicking listener is not recovered and aborts the remaining fan-out.
func (r *Registry) notify() {
	for _, fn := range r.listeners {
		fn(r.snapshot())
	}
}
