package app

import (
	"fmt"
	"testing"

	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/seed"
)

func TestNew(t *testing.T) {
	app, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if app.Registry == nil {
		t.Fatal("Expected Registry to be initialized")
	}
	if app.Board == nil {
		t.Fatal("Expected Board to be initialized")
	}
	if got := len(app.Board.Lanes()); got != 2 {
		t.Errorf("lanes = %d, want 2", got)
	}
	if app.Board.Registry() != app.Registry {
		t.Error("Board should share the App registry")
	}
}

func TestNew_WithOptions(t *testing.T) {
	n := 0
	var order []string
	app, err := New(
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		WithListener(func([]*models.Project) { order = append(order, "early") }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	app.Registry.AddListener(func([]*models.Project) { order = append(order, "late") })

	p := app.AddProject("x", "", 1)

	if p.ID != "id-1" {
		t.Errorf("ID = %q, want id-1", p.ID)
	}
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("listener order = %v, want [early late]", order)
	}
	if got := len(app.Board.Lane(models.StatusActive).AssignedProjects()); got != 1 {
		t.Errorf("active lane has %d projects, want 1", got)
	}
}

func TestSeed(t *testing.T) {
	app, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f := &seed.File{Projects: []seed.Entry{
		{Title: "a", People: 1},
		{Title: "b", People: 2, Status: "finished"},
	}}

	if got := app.Seed(f); got != 2 {
		t.Errorf("Seed() = %d, want 2", got)
	}
	if got := len(app.Board.Lane(models.StatusFinished).AssignedProjects()); got != 1 {
		t.Errorf("finished lane has %d projects, want 1", got)
	}
}

func TestClose(t *testing.T) {
	app, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
