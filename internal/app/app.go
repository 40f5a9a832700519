package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/projects"
	"github.com/thenoetrevino/dragboard/internal/seed"
	"github.com/thenoetrevino/dragboard/internal/tui/board"
)

// App holds the registry and the views subscribed to it.
// This is the bootstrap that constructs the lanes and registers them.
type App struct {
	Registry *projects.Registry
	Board    *board.Board

	logger *slog.Logger
}

// New creates a new App with an empty registry and one lane per status
func New(opts ...Option) (*App, error) {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	regOpts := []projects.Option{projects.WithLogger(cfg.logger)}
	if cfg.newID != nil {
		regOpts = append(regOpts, projects.WithIDGenerator(cfg.newID))
	}
	reg := projects.NewRegistry(regOpts...)

	for _, fn := range cfg.listeners {
		reg.AddListener(fn)
	}

	b, err := board.New(reg, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}

	return &App{
		Registry: reg,
		Board:    b,
		logger:   cfg.logger,
	}, nil
}

// Seed adds every project in f to the registry
func (a *App) Seed(f *seed.File) int {
	n := f.Apply(a.Registry)
	a.logger.Info("seeded projects", "count", n)
	return n
}

// AddProject adds a single active project
func (a *App) AddProject(title, description string, people int) *models.Project {
	return a.Registry.AddProject(title, description, people)
}

// Close performs cleanup of application resources.
// Nothing is held open today; the registry lives only in memory.
func (a *App) Close() error {
	return nil
}
